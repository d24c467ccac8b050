package order

import (
	"fmt"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/fsm"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> ON_THE_WAY ──> DELIVERED
//	   │            │             │              │
//	   └────────────┴─────────────┴──────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal states with no outgoing edges.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OnTheWay indicates a driver is delivering the order.
	OnTheWay

	// Delivered is the successful terminal status.
	Delivered

	// Cancelled is the unsuccessful terminal status. Cancellation is a
	// status change, never a deletion.
	Cancelled
)

// getStatusStrings returns the wire representation of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		OnTheWay:  "ON_THE_WAY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation
// and parsing of client-supplied status strings.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		OnTheWay:  "ON_THE_WAY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// machine is the single transition table for the order lifecycle, shared with
// the delivery lifecycle through the fsm helper.
var machine = fsm.New(map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Preparing, Cancelled},
	Preparing: {OnTheWay, Cancelled},
	OnTheWay:  {Delivered, Cancelled},
})

// StatusFromString parses a wire-format status string such as "CONFIRMED".
// Returns an error for unknown or invalid values.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", raw),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
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

// CanCancelByCustomer reports whether a customer-initiated cancellation is
// still permitted. Customers may only cancel before the kitchen starts,
// while the order is PENDING or CONFIRMED.
func (s Status) CanCancelByCustomer() bool {
	return s == Pending || s == Confirmed
}

// TransitionTo validates the edge from the current status to next and returns
// the new status. The error names both states, e.g. "cannot transition from
// PENDING to PREPARING".
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if err := machine.Transition(s, next); err != nil {
		return Unknown, err
	}
	return next, nil
}
