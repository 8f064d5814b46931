package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// freshState returns a label not present in the sorted label slice.
func freshState(order []State) State {
	if len(order) == 0 {
		return 0
	}
	return order[len(order)-1] + 1
}

// denseIndex maps state labels to their position in order, so fixpoint
// working sets can live in a bitset.
func denseIndex(order []State) map[State]int {
	idx := make(map[State]int, len(order))
	for i, s := range order {
		idx[s] = i
	}
	return idx
}

// Complete returns a copy of d whose transition function is total. A fresh
// absorbing sink state receives every previously undefined (state, symbol)
// pair and loops to itself on every symbol; it is never accepting. On an
// already-complete automaton the sink is simply unreachable, so completing
// twice changes nothing observable.
func Complete[S comparable](d *DFA[S]) *DFA[S] {
	sink := freshState(d.order)

	states := make(map[State]struct{}, len(d.states)+1)
	for s := range d.states {
		states[s] = struct{}{}
	}
	states[sink] = struct{}{}

	delta := make(map[State]map[S]State, len(states))
	for s := range states {
		row := make(map[S]State, d.alphabet.Len())
		for sym, dst := range d.delta[s] {
			row[sym] = dst
		}
		for _, sym := range d.alphabet.symbols {
			if _, ok := row[sym]; !ok {
				row[sym] = sink
			}
		}
		delta[s] = row
	}

	accepting := make(map[State]struct{}, len(d.accepting))
	for s := range d.accepting {
		accepting[s] = struct{}{}
	}

	var initial *State
	if d.hasInit {
		ini := d.initial
		initial = &ini
	}
	return newValidated(d.alphabet, states, initial, accepting, delta)
}

// Reachable returns d restricted to the states reachable from the initial
// state. Transitions keep only edges whose source and target both survive;
// the accepting set is intersected with the survivors. Without an initial
// state the result is empty.
func Reachable[S comparable](d *DFA[S]) *DFA[S] {
	idx := denseIndex(d.order)
	live := bitset.New(uint(len(d.order)))

	var worklist []State
	if d.hasInit {
		live.Set(uint(idx[d.initial]))
		worklist = append(worklist, d.initial)
	}
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, dst := range d.delta[s] {
			if !live.Test(uint(idx[dst])) {
				live.Set(uint(idx[dst]))
				worklist = append(worklist, dst)
			}
		}
	}
	return restrict(d, live, idx)
}

// Coreachable returns d restricted to the states from which some accepting
// state is reachable. Every accepting state reaches itself via the empty
// path, so the accepting set always survives intact; the initial state is
// dropped when it cannot reach acceptance, leaving an automaton that
// accepts no word.
func Coreachable[S comparable](d *DFA[S]) *DFA[S] {
	idx := denseIndex(d.order)
	live := bitset.New(uint(len(d.order)))
	for s := range d.accepting {
		live.Set(uint(idx[s]))
	}

	// Backward fixpoint: add any state with an edge into the live set,
	// until a full pass adds nothing.
	for changed := true; changed; {
		changed = false
		for _, s := range d.order {
			if live.Test(uint(idx[s])) {
				continue
			}
			for _, dst := range d.delta[s] {
				if live.Test(uint(idx[dst])) {
					live.Set(uint(idx[s]))
					changed = true
					break
				}
			}
		}
	}
	return restrict(d, live, idx)
}

// Trim returns d restricted to states that are both reachable from the
// initial state and able to reach an accepting state, exactly the states
// relevant to the language.
func Trim[S comparable](d *DFA[S]) *DFA[S] {
	return Coreachable(Reachable(d))
}

// restrict rebuilds d keeping only the states whose dense index is set in
// live. Edges survive when both endpoints do; so does the initial state.
func restrict[S comparable](d *DFA[S], live *bitset.BitSet, idx map[State]int) *DFA[S] {
	states := make(map[State]struct{}, live.Count())
	accepting := make(map[State]struct{})
	delta := make(map[State]map[S]State)

	for _, s := range d.order {
		if !live.Test(uint(idx[s])) {
			continue
		}
		states[s] = struct{}{}
		if _, ok := d.accepting[s]; ok {
			accepting[s] = struct{}{}
		}
		for sym, dst := range d.delta[s] {
			if !live.Test(uint(idx[dst])) {
				continue
			}
			if delta[s] == nil {
				delta[s] = make(map[S]State, len(d.delta[s]))
			}
			delta[s][sym] = dst
		}
	}

	var initial *State
	if d.hasInit && live.Test(uint(idx[d.initial])) {
		ini := d.initial
		initial = &ini
	}
	return newValidated(d.alphabet, states, initial, accepting, delta)
}
