// Package fsm provides a small generic finite-state-machine helper shared by
// the order and delivery lifecycles. A Machine is a mapping from each state to
// the set of states it may transition to; states with no outgoing edges are
// terminal. Keeping the transition contract in one type makes it enforceable
// and unit-testable in isolation from persistence.
package fsm

import (
	"fmt"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// Machine validates transitions between states of type S.
// S must implement fmt.Stringer so rejected transitions can name both states.
type Machine[S interface {
	comparable
	fmt.Stringer
}] struct {
	transitions map[S][]S
}

// New creates a Machine from a transition table. The table maps each state to
// its permitted successor states. States absent from the table, or mapped to
// an empty slice, are terminal.
func New[S interface {
	comparable
	fmt.Stringer
}](transitions map[S][]S) Machine[S] {
	return Machine[S]{transitions: transitions}
}

// CanTransition reports whether to is a direct successor of from.
// Same-state no-ops are not permitted unless listed explicitly.
func (m Machine[S]) CanTransition(from, to S) bool {
	for _, next := range m.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the edge from -> to and returns an error naming both
// states when the edge is not in the table.
func (m Machine[S]) Transition(from, to S) error {
	if !m.CanTransition(from, to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition from %s to %s", from, to),
		)
	}
	return nil
}

// IsTerminal reports whether the state has no outgoing transitions.
func (m Machine[S]) IsTerminal(s S) bool {
	return len(m.transitions[s]) == 0
}
