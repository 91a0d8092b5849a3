package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
)

var actions = []string{
	"login",
	"logout",
	"viewed product",
	"added to cart",
	"removed from cart",
	"purchased",
	"reviewed product",
	"updated profile",
}

// TextGenerator writes "user_N<TAB>action" lines.
type TextGenerator struct {
	UserCount int
	rand      *rand.Rand
}

func (g *TextGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *TextGenerator) WriteLine(w io.Writer) error {
	user := g.rand.IntN(max(g.UserCount, 1))
	_, err := fmt.Fprintf(w, "user_%d\t%s\n", user, actions[g.rand.IntN(len(actions))])
	return err
}

func (g *TextGenerator) Description() string {
	return "User actions: user_N<TAB>action (for textswap)"
}

func (g *TextGenerator) DefaultCount() int64 {
	return 1e4
}
