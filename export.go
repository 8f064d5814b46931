package dfa

// Transition is one (source, symbol, target) triple of the transition
// function, as exposed to read-only consumers such as visualizers.
type Transition[S comparable] struct {
	From  State
	Input S
	To    State
}

// Alphabet returns the automaton's alphabet.
func (d *DFA[S]) Alphabet() Alphabet[S] {
	return d.alphabet
}

// States returns the state labels in ascending order.
func (d *DFA[S]) States() []State {
	out := make([]State, len(d.order))
	copy(out, d.order)
	return out
}

// Initial returns the initial state, if one is designated.
func (d *DFA[S]) Initial() (State, bool) {
	return d.initial, d.hasInit
}

// IsAccepting reports whether s is an accepting state.
func (d *DFA[S]) IsAccepting(s State) bool {
	_, ok := d.accepting[s]
	return ok
}

// Contains reports whether s belongs to the state set.
func (d *DFA[S]) Contains(s State) bool {
	_, ok := d.states[s]
	return ok
}

// Step performs one transition lookup. The second return value is false
// when the automaton defines no successor for (from, sym).
func (d *DFA[S]) Step(from State, sym S) (State, bool) {
	next, ok := d.delta[from][sym]
	return next, ok
}

// Transitions enumerates the transition function as triples, ordered by
// source state and then by alphabet enumeration order.
func (d *DFA[S]) Transitions() []Transition[S] {
	out := make([]Transition[S], 0, d.NumTransitions())
	for _, src := range d.order {
		row := d.delta[src]
		if len(row) == 0 {
			continue
		}
		for _, sym := range d.alphabet.symbols {
			if dst, ok := row[sym]; ok {
				out = append(out, Transition[S]{From: src, Input: sym, To: dst})
			}
		}
	}
	return out
}

// NumStates returns the number of states.
func (d *DFA[S]) NumStates() int {
	return len(d.states)
}

// NumTransitions returns the number of defined (state, symbol) pairs.
func (d *DFA[S]) NumTransitions() int {
	n := 0
	for _, row := range d.delta {
		n += len(row)
	}
	return n
}

// IsComplete reports whether the transition function is total, i.e. every
// (state, symbol) pair has a defined successor. Minimize establishes this
// internally; Accepts does not require it.
func (d *DFA[S]) IsComplete() bool {
	for s := range d.states {
		if len(d.delta[s]) < d.alphabet.Len() {
			return false
		}
	}
	return true
}
