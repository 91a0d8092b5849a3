package executors

import (
	"fmt"
	"sort"

	"pkg.jsn.cam/swapstage/pkg/executors/activityswap"
	"pkg.jsn.cam/swapstage/pkg/executors/textswap"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

var Executors = map[string]stage.Worker{
	"activityswap": activityswap.ActivitySwapWorker{},
	"textswap":     textswap.TextSwapWorker{},
}

func IsValidExecutor(name string) bool {
	_, exists := Executors[name]
	return exists
}

func GetExecutor(name string) stage.Worker {
	return Executors[name]
}

// Lookup returns the named executor configured with sep, if it accepts one.
func Lookup(name, sep string) (stage.Worker, error) {
	worker, exists := Executors[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", stage.ErrUnknownExecutor, name)
	}

	if d, ok := worker.(stage.DelimitedWorker); ok && sep != "" {
		return d.WithSeparator(sep), nil
	}
	return worker, nil
}

func ListExecutors() []string {
	names := make([]string, 0, len(Executors))
	for name := range Executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetDescription(name string) (string, error) {
	if worker, exists := Executors[name]; exists {
		return worker.Description(), nil
	}
	return "", stage.ErrInvalidExecutor
}
