package dfa_test

import (
	"fmt"

	"github.com/nerode/dfa"
)

// Build the automaton over {a, b} accepting "ab" followed by anything,
// run a few words on it, and normalize it.
func Example() {
	d, err := dfa.New(
		dfa.NewAlphabet("a", "b"),
		[]dfa.State{0, 1, 2},
		map[dfa.State]map[string]dfa.State{
			0: {"a": 1},
			1: {"b": 2},
			2: {"a": 2, "b": 2},
		},
		dfa.WithInitial(0),
		dfa.WithAccepting(2),
	)
	if err != nil {
		panic(err)
	}

	ab, _ := d.Accepts([]string{"a", "b"})
	b, _ := d.Accepts([]string{"b"})
	fmt.Println(ab, b)

	// The partial automaton rejects "b" by getting stuck; the completed
	// one rejects it in the sink.
	completed := dfa.Complete(d)
	b, _ = completed.Accepts([]string{"b"})
	fmt.Println(completed.IsComplete(), b)

	m := dfa.Trim(dfa.Minimize(d))
	fmt.Println(m.NumStates())

	// Output:
	// true false
	// true false
	// 3
}
