package words_test

import (
	"fmt"

	"github.com/s-weil/fuchsian/group"
	"github.com/s-weil/fuchsian/moebius"
	"github.com/s-weil/fuchsian/words"
)

// ExampleEnumerator enumerates all freely reduced words of length ≤ 2
// over a single hyperbolic generator. The signed table is [a, a⁻¹], so
// the only reduced words are powers of one letter.
func ExampleEnumerator() {
	g, _ := group.New(moebius.New(2, 0, 0, 0.5))
	e, _ := words.New(g, words.WithMaxWordLength(2))
	for {
		w, _, ok := e.Next()
		if !ok {
			break
		}
		fmt.Println(w)
	}
	// Output:
	// ε
	// 0
	// 1
	// 0·0
	// 1·1
}
