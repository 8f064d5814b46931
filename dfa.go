// Package dfa implements deterministic finite automata and the classical
// transformations over them: completion to a total transition function,
// minimization via state equivalence, forward/backward reachability pruning,
// and word acceptance.
//
// A DFA is immutable once constructed. Every transformation allocates and
// returns a new automaton, so independent transformations are safe to run
// concurrently without synchronization.
//
// Errors:
//
//	ErrMalformedAutomaton - construction referenced an unknown state or symbol.
//	ErrOutOfAlphabet      - a word contains a symbol outside the alphabet.
package dfa

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for construction and acceptance checking.
var (
	// ErrMalformedAutomaton indicates the constructor inputs reference a
	// state or symbol that does not belong to the automaton.
	ErrMalformedAutomaton = errors.New("dfa: malformed automaton")

	// ErrOutOfAlphabet indicates a word contains a symbol not drawn from
	// the automaton's alphabet.
	ErrOutOfAlphabet = errors.New("dfa: symbol not in alphabet")
)

// State is an opaque state label. The engine never interprets labels beyond
// equality; transformations that introduce states (the completion sink,
// minimization's equivalence classes) pick labels fresh with respect to the
// automaton they were given.
type State int

// Alphabet is an immutable finite set of symbols. The zero value is the
// empty alphabet.
type Alphabet[S comparable] struct {
	symbols []S
	index   map[S]int
}

// NewAlphabet builds an alphabet from the given symbols. Duplicates are
// collapsed; the first occurrence fixes the symbol's enumeration position.
func NewAlphabet[S comparable](symbols ...S) Alphabet[S] {
	a := Alphabet[S]{
		symbols: make([]S, 0, len(symbols)),
		index:   make(map[S]int, len(symbols)),
	}
	for _, sym := range symbols {
		if _, ok := a.index[sym]; ok {
			continue
		}
		a.index[sym] = len(a.symbols)
		a.symbols = append(a.symbols, sym)
	}
	return a
}

// Contains reports whether sym belongs to the alphabet.
func (a Alphabet[S]) Contains(sym S) bool {
	_, ok := a.index[sym]
	return ok
}

// Symbols returns the symbols in enumeration order.
func (a Alphabet[S]) Symbols() []S {
	out := make([]S, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Len returns the number of symbols.
func (a Alphabet[S]) Len() int {
	return len(a.symbols)
}

// DFA is a deterministic finite automaton over symbols of type S.
//
// The transition function may be partial: a (state, symbol) pair with no
// entry simply has no successor. Complete produces the total variant;
// Accepts tolerates partiality by rejecting on the first undefined step.
type DFA[S comparable] struct {
	alphabet  Alphabet[S]
	states    map[State]struct{}
	order     []State // sorted state labels, fixed at construction
	initial   State
	hasInit   bool
	accepting map[State]struct{}
	delta     map[State]map[S]State
}

// Option configures the optional parts of a DFA under construction.
type Option func(*config)

type config struct {
	initial   *State
	accepting []State
}

// WithInitial designates the initial state.
func WithInitial(s State) Option {
	return func(c *config) { c.initial = &s }
}

// WithAccepting adds accepting states.
func WithAccepting(states ...State) Option {
	return func(c *config) { c.accepting = append(c.accepting, states...) }
}

// New constructs a DFA and validates it. Every transition source, target,
// and symbol must belong to states and alphabet respectively, as must the
// initial state (if designated) and every accepting state; any violation
// fails with ErrMalformedAutomaton. The inputs are copied, so the caller may
// reuse them afterwards.
//
// An automaton without an initial state is a valid value (it accepts no
// word); so is one with no states at all.
func New[S comparable](alphabet Alphabet[S], states []State, transitions map[State]map[S]State, opts ...Option) (*DFA[S], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &DFA[S]{
		alphabet:  alphabet,
		states:    make(map[State]struct{}, len(states)),
		accepting: make(map[State]struct{}, len(cfg.accepting)),
		delta:     make(map[State]map[S]State, len(transitions)),
	}
	for _, s := range states {
		d.states[s] = struct{}{}
	}

	if cfg.initial != nil {
		if _, ok := d.states[*cfg.initial]; !ok {
			return nil, fmt.Errorf("%w: initial state %d not in state set", ErrMalformedAutomaton, *cfg.initial)
		}
		d.initial = *cfg.initial
		d.hasInit = true
	}
	for _, s := range cfg.accepting {
		if _, ok := d.states[s]; !ok {
			return nil, fmt.Errorf("%w: accepting state %d not in state set", ErrMalformedAutomaton, s)
		}
		d.accepting[s] = struct{}{}
	}
	for src, row := range transitions {
		if _, ok := d.states[src]; !ok {
			return nil, fmt.Errorf("%w: transition source %d not in state set", ErrMalformedAutomaton, src)
		}
		for sym, dst := range row {
			if !alphabet.Contains(sym) {
				return nil, fmt.Errorf("%w: transition on %v from state %d uses a symbol outside the alphabet", ErrMalformedAutomaton, sym, src)
			}
			if _, ok := d.states[dst]; !ok {
				return nil, fmt.Errorf("%w: transition target %d not in state set", ErrMalformedAutomaton, dst)
			}
			if d.delta[src] == nil {
				d.delta[src] = make(map[S]State, len(row))
			}
			d.delta[src][sym] = dst
		}
	}

	d.order = sortedStates(d.states)
	return d, nil
}

// newValidated assembles a DFA from parts that already satisfy the
// construction invariants. Transformations own their outputs, so no copying
// or re-validation happens here.
func newValidated[S comparable](alphabet Alphabet[S], states map[State]struct{}, initial *State, accepting map[State]struct{}, delta map[State]map[S]State) *DFA[S] {
	d := &DFA[S]{
		alphabet:  alphabet,
		states:    states,
		accepting: accepting,
		delta:     delta,
		order:     sortedStates(states),
	}
	if initial != nil {
		d.initial = *initial
		d.hasInit = true
	}
	return d
}

func sortedStates(set map[State]struct{}) []State {
	order := make([]State, 0, len(set))
	for s := range set {
		order = append(order, s)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order
}

// Accepts runs the automaton on word. Every symbol of word must belong to
// the alphabet; otherwise it fails with ErrOutOfAlphabet. A word is rejected
// as soon as the current state has no transition for the next symbol, so a
// partial automaton needs no prior completion. An automaton without an
// initial state rejects every word.
func (d *DFA[S]) Accepts(word []S) (bool, error) {
	for i, sym := range word {
		if !d.alphabet.Contains(sym) {
			return false, fmt.Errorf("%w: word[%d] = %v", ErrOutOfAlphabet, i, sym)
		}
	}
	if !d.hasInit {
		return false, nil
	}
	cur := d.initial
	for _, sym := range word {
		next, ok := d.delta[cur][sym]
		if !ok {
			return false, nil
		}
		cur = next
	}
	_, accept := d.accepting[cur]
	return accept, nil
}
