package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

var (
	metaBucket = []byte("meta")
	versionKey = []byte("version")
)

const runBucketPrefix = "run/"

// RunInfo describes a stored run.
type RunInfo struct {
	ID        string    `json:"id"`
	Executor  string    `json:"executor"`
	Records   int       `json:"records"`
	CreatedAt time.Time `json:"created_at"`
}

// Sink stores the output records of runs, one bucket per run.
type Sink struct {
	backend Backend
	logger  *zap.Logger
}

type SinkOption func(*Sink)

func WithLogger(logger *zap.Logger) SinkOption {
	return func(s *Sink) {
		s.logger = logger
	}
}

// NewSink stamps an empty backend with stage.Version, or checks that an
// existing one was written by a compatible version.
func NewSink(backend Backend, opts ...SinkOption) (*Sink, error) {
	s := &Sink{
		backend: backend,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	err := backend.Update(func(tx Transaction) error {
		if err := tx.CreateBucket(metaBucket); err != nil {
			return err
		}
		meta := tx.Bucket(metaBucket)

		have := meta.Get(versionKey)
		if have == nil {
			return meta.Put(versionKey, []byte(stage.Version))
		}

		ok, err := stage.IsCompatibleVersion(string(have), stage.Version)
		if err != nil {
			return fmt.Errorf("read store version: %w", err)
		}
		if !ok {
			return stage.CompatibilityError(string(have), stage.Version)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func runBucket(runID string) []byte {
	return []byte(runBucketPrefix + runID)
}

// seqKey is zero-padded so byte order matches emission order.
func seqKey(i int) []byte {
	return fmt.Appendf(nil, "%020d", i)
}

// Write stores kvs under runID in one transaction.
func (s *Sink) Write(runID, executor string, kvs []stage.KeyValue) error {
	info := RunInfo{
		ID:        runID,
		Executor:  executor,
		Records:   len(kvs),
		CreatedAt: time.Now().UTC(),
	}
	infoBytes, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode run info: %w", err)
	}

	err = s.backend.Update(func(tx Transaction) error {
		name := runBucket(runID)
		if err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("create run bucket: %w", err)
		}
		bkt := tx.Bucket(name)

		for i, kv := range kvs {
			data, err := json.Marshal(kv)
			if err != nil {
				return fmt.Errorf("encode record %d: %w", i, err)
			}
			if err := bkt.Put(seqKey(i), data); err != nil {
				return fmt.Errorf("store record %d: %w", i, err)
			}
		}

		return tx.Bucket(metaBucket).Put([]byte(runID), infoBytes)
	})
	if err != nil {
		return err
	}

	s.logger.Info("stored run output", zap.String("run_id", runID), zap.Int("records", len(kvs)))
	return nil
}

// Records returns a run's records in the order they were written.
func (s *Sink) Records(runID string) ([]stage.KeyValue, error) {
	name := runBucket(runID)
	exists, err := s.backend.BucketExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", stage.ErrRunNotFound, runID)
	}

	var kvs []stage.KeyValue
	err = s.backend.ForEach(name, func(k, v []byte) error {
		var kv stage.KeyValue
		if err := json.Unmarshal(v, &kv); err != nil {
			return fmt.Errorf("decode record %s: %w", k, err)
		}
		kvs = append(kvs, kv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return kvs, nil
}

// Runs lists stored runs, oldest first.
func (s *Sink) Runs() ([]RunInfo, error) {
	var runs []RunInfo
	err := s.backend.ForEach(metaBucket, func(k, v []byte) error {
		if string(k) == string(versionKey) {
			return nil
		}
		var info RunInfo
		if err := json.Unmarshal(v, &info); err != nil {
			return fmt.Errorf("decode run info %s: %w", k, err)
		}
		runs = append(runs, info)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(runs, func(a, b RunInfo) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return runs, nil
}

// DeleteRun removes a run and its records. Deleting an unknown run is a no-op.
func (s *Sink) DeleteRun(runID string) error {
	if err := s.backend.DeleteBucket(runBucket(runID)); err != nil {
		return err
	}
	return s.backend.Update(func(tx Transaction) error {
		return tx.Bucket(metaBucket).Delete([]byte(runID))
	})
}

func (s *Sink) Close() error {
	return s.backend.Close()
}
