package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Minimize returns the quotient of d under the coarsest right-invariant
// state equivalence (Myhill-Nerode equivalence). The result accepts exactly
// the same language with the minimum number of states up to relabeling, and
// minimizing a minimal automaton yields an isomorphic one.
//
// The input is completed first, so partial automata are accepted; compose
// with Trim to also discard states the completion leaves unreachable.
// Equivalence classes are labeled 0..k-1, a fresh identity space unrelated
// to the input's labels.
func Minimize[S comparable](d *DFA[S]) *DFA[S] {
	c := Complete(d)

	n := len(c.order)
	idx := denseIndex(c.order)
	syms := c.alphabet.symbols
	m := len(syms)

	// Successor table over dense indices; total after completion.
	next := make([]int, n*m)
	for i, s := range c.order {
		for k, sym := range syms {
			next[i*m+k] = idx[c.delta[s][sym]]
		}
	}
	acc := bitset.New(uint(n))
	for s := range c.accepting {
		acc.Set(uint(idx[s]))
	}

	// Greatest fixpoint over the pair relation z, seeded with every pair
	// agreeing on acceptance and narrowed until stable: a pair survives
	// only if each symbol carries it to a surviving pair.
	z := bitset.New(uint(n * n))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if acc.Test(uint(i)) == acc.Test(uint(j)) {
				z.Set(uint(i*n + j))
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if !z.Test(uint(i*n + j)) {
					continue
				}
				for k := 0; k < m; k++ {
					if !z.Test(uint(next[i*m+k]*n + next[j*m+k])) {
						z.Clear(uint(i*n + j))
						changed = true
						break
					}
				}
			}
		}
	}

	// At the fixpoint z is an equivalence relation; label each class by its
	// lowest member, in order, so labeling is deterministic.
	class := make([]State, n)
	numClasses := 0
	for i := 0; i < n; i++ {
		rep := i
		for j := 0; j < i; j++ {
			if z.Test(uint(i*n + j)) {
				rep = j
				break
			}
		}
		if rep == i {
			class[i] = State(numClasses)
			numClasses++
		} else {
			class[i] = class[rep]
		}
	}

	states := make(map[State]struct{}, numClasses)
	accepting := make(map[State]struct{})
	delta := make(map[State]map[S]State, numClasses)
	for i := range c.order {
		cls := class[i]
		if _, done := states[cls]; done {
			continue
		}
		states[cls] = struct{}{}
		// Acceptance is invariant within a class, so any member decides.
		if acc.Test(uint(i)) {
			accepting[cls] = struct{}{}
		}
		row := make(map[S]State, m)
		for k, sym := range syms {
			row[sym] = class[next[i*m+k]]
		}
		if m > 0 {
			delta[cls] = row
		}
	}

	var initial *State
	if c.hasInit {
		cls := class[idx[c.initial]]
		initial = &cls
	}
	return newValidated(c.alphabet, states, initial, accepting, delta)
}
