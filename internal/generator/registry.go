package generator

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
)

// Options parameterise the registered generators.
type Options struct {
	UserCount int
	Skew      float64
}

// Registry maps executor names to generator factories.
var Registry = map[string]func(Options) Generator{
	"activityswap": func(o Options) Generator { return &ActivityGenerator{UserCount: o.UserCount, Skew: o.Skew} },
	"textswap":     func(o Options) Generator { return &TextGenerator{UserCount: o.UserCount} },
}

func Get(name string, opts Options) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(opts), nil
}

func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write initialises g with seed and writes count lines to w.
func Write(w io.Writer, g Generator, count int64, seed uint64) error {
	g.Init(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	bw := bufio.NewWriter(w)
	for range count {
		if err := g.WriteLine(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
