package delivery

import (
	"fmt"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/fsm"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions are strictly linear, each edge one-directional:
//
//	ASSIGNED ──> PICKED_UP ──> IN_TRANSIT ──> DELIVERED
//
// DELIVERED is terminal. A delivery in any non-terminal status is "active";
// a driver holds at most one active delivery at a time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status, set when a driver takes the order.
	Assigned

	// PickedUp indicates the driver has collected the order from the restaurant.
	PickedUp

	// InTransit indicates the driver is en route to the customer.
	InTransit

	// Delivered is the terminal status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

var machine = fsm.New(map[Status][]Status{
	Assigned:  {PickedUp},
	PickedUp:  {InTransit},
	InTransit: {Delivered},
})

// StatusFromString parses a wire-format status string such as "PICKED_UP".
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid delivery status", raw),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && machine.IsTerminal(s)
}

// IsActive reports whether a delivery in this status still occupies its driver.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !machine.IsTerminal(s)
}

// TransitionTo validates the edge from the current status to next and returns
// the new status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if err := machine.Transition(s, next); err != nil {
		return Unknown, err
	}
	return next, nil
}
