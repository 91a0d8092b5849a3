package generator

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
)

// ActivityGenerator writes "user<TAB>activity" int32 pairs. A Skew fraction of
// lines reuse activity 0 so one key dominates after the swap; roughly one line
// in a thousand uses the int32 bounds.
type ActivityGenerator struct {
	UserCount int
	Skew      float64
	rand      *rand.Rand
}

func (g *ActivityGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *ActivityGenerator) WriteLine(w io.Writer) error {
	user := g.rand.Int32N(int32(max(g.UserCount, 1)))
	activity := g.rand.Int32()

	switch {
	case g.rand.Float64() < g.Skew:
		activity = 0
	case g.rand.IntN(1000) == 0:
		user, activity = math.MinInt32, math.MaxInt32
	}

	_, err := fmt.Fprintf(w, "%d\t%d\n", user, activity)
	return err
}

func (g *ActivityGenerator) Description() string {
	return "Integer pairs: user<TAB>activity (for activityswap)"
}

func (g *ActivityGenerator) DefaultCount() int64 {
	return 1e5
}
