package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize_ExampleScenario(t *testing.T) {
	d := exampleDFA(t)
	m := Minimize(Trim(d))

	// 0, 1, 2 are pairwise distinguishable, so nothing collapses; the
	// completion sink contributes the one extra class.
	assert.Equal(t, 4, m.NumStates())
	assert.Equal(t, 3, Trim(m).NumStates())
	assertSameLanguage(t, m, d, []string{"a", "b"}, 5)
}

func TestMinimize_CollapsesEquivalentStates(t *testing.T) {
	// 1 and 2 are both accepting with identical behavior; the language is
	// every nonempty word.
	d, err := New(NewAlphabet("a", "b"),
		[]State{0, 1, 2},
		map[State]map[string]State{
			0: {"a": 1, "b": 2},
			1: {"a": 1, "b": 1},
			2: {"a": 2, "b": 2},
		},
		WithInitial(0),
		WithAccepting(1, 2),
	)
	require.NoError(t, err)

	m := Minimize(d)

	// Classes: {0}, {1, 2}, and the unreachable sink.
	assert.Equal(t, 3, m.NumStates())
	assert.Equal(t, 2, Trim(m).NumStates())
	assertSameLanguage(t, m, d, []string{"a", "b"}, 5)
}

func TestMinimize_MultipleRefinementRounds(t *testing.T) {
	// Length mod 3 counter unrolled to six states: i and i+3 are
	// equivalent, but proving it takes repeated narrowing.
	d, err := New(NewAlphabet("a"),
		[]State{0, 1, 2, 3, 4, 5},
		map[State]map[string]State{
			0: {"a": 1},
			1: {"a": 2},
			2: {"a": 3},
			3: {"a": 4},
			4: {"a": 5},
			5: {"a": 0},
		},
		WithInitial(0),
		WithAccepting(0, 3),
	)
	require.NoError(t, err)

	m := Minimize(d)

	assert.Equal(t, 3, Trim(m).NumStates())
	assertSameLanguage(t, m, d, []string{"a"}, 9)
}

func TestMinimize_PartialInputIsCompletedFirst(t *testing.T) {
	d := exampleDFA(t)
	m := Minimize(d)

	assert.True(t, m.IsComplete())
	assertSameLanguage(t, m, d, []string{"a", "b"}, 5)
}

func TestMinimize_Idempotent(t *testing.T) {
	for name, d := range map[string]*DFA[string]{
		"example": exampleDFA(t),
		"trimmed": Trim(exampleDFA(t)),
	} {
		t.Run(name, func(t *testing.T) {
			m := Minimize(d)
			mm := Minimize(m)
			assert.Equal(t, m.NumStates(), mm.NumStates())
			assertSameLanguage(t, mm, m, []string{"a", "b"}, 5)
		})
	}
}

func TestMinimize_FreshClassLabels(t *testing.T) {
	// Input labels are far from zero; class labels start over at 0.
	d, err := New(NewAlphabet("a"),
		[]State{40, 41},
		map[State]map[string]State{40: {"a": 41}},
		WithInitial(40),
		WithAccepting(41),
	)
	require.NoError(t, err)

	m := Minimize(d)
	states := m.States()
	assert.Equal(t, State(0), states[0])
	assert.Equal(t, State(len(states)-1), states[len(states)-1])
}

func TestMinimize_NoInitialState(t *testing.T) {
	d, err := New(NewAlphabet("a"),
		[]State{0, 1},
		map[State]map[string]State{0: {"a": 1}},
		WithAccepting(1),
	)
	require.NoError(t, err)

	m := Minimize(d)

	_, ok := m.Initial()
	assert.False(t, ok)
	accepted, err := m.Accepts([]string{"a"})
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestMinimize_InputNotMutated(t *testing.T) {
	d := exampleDFA(t)
	_ = Minimize(d)

	assert.Equal(t, 3, d.NumStates())
	assert.Equal(t, 4, d.NumTransitions())
	assert.False(t, d.IsComplete())
}
