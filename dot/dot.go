// Package dot renders automata from package dfa as Graphviz DOT text.
//
// It is a pure consumer of the dfa read-only surface: states are drawn as
// circles (doublecircle for accepting states), every transition becomes a
// labeled edge, and an invisible entry node points at the initial state
// with a bold edge. The core package never imports this one.
package dot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nerode/dfa"
)

// entryNode is the invisible node the entry edge starts from.
const entryNode = "entry"

// Write emits the DOT digraph for d to w.
func Write[S comparable](w io.Writer, d *dfa.DFA[S]) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\t%s [style=invisible]\n", entryNode); err != nil {
		return err
	}

	initial, hasInitial := d.Initial()
	for _, s := range d.States() {
		attrs := ""
		if d.IsAccepting(s) {
			attrs = " [shape=doublecircle]"
		}
		if hasInitial && s == initial {
			if attrs == "" {
				attrs = " [root=true]"
			} else {
				attrs = " [shape=doublecircle root=true]"
			}
		}
		if _, err := fmt.Fprintf(w, "\t%q%s\n", stateName(s), attrs); err != nil {
			return err
		}
	}

	if hasInitial {
		if _, err := fmt.Fprintf(w, "\t%s -> %q [style=bold]\n", entryNode, stateName(initial)); err != nil {
			return err
		}
	}
	for _, t := range d.Transitions() {
		if _, err := fmt.Fprintf(w, "\t%q -> %q [label=%q]\n", stateName(t.From), stateName(t.To), fmt.Sprint(t.Input)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// Marshal returns the DOT digraph for d as a byte slice.
func Marshal[S comparable](d *dfa.DFA[S]) []byte {
	var buf bytes.Buffer
	// bytes.Buffer never fails, so neither does Write here.
	_ = Write(&buf, d)
	return buf.Bytes()
}

func stateName(s dfa.State) string {
	return fmt.Sprintf("%d", s)
}
