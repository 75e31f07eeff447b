package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Values are persisted and
// exchanged verbatim.
//
// State transitions:
//
//	pendiente ──> confirmado ──> en_produccion ──> despachado ──> entregado
//	    │              │               │               │
//	    └──────────────┴───────┬───────┴───────────────┘
//	                           v
//	                       cancelado
//
// Manual edits may move a non-terminal order to any status (back-office staff
// correct mistakes), but entregado and cancelado are terminal: once reached,
// only a no-op "transition" to the same status is accepted.
type Status string

const (
	// Pending is the initial status of every new order.
	Pending Status = "pendiente"

	// Confirmed means the bakery accepted the order.
	Confirmed Status = "confirmado"

	// InProduction means the order is being baked.
	InProduction Status = "en_produccion"

	// Dispatched means the order left for delivery. Set by hand or by the
	// auto-dispatch sweep.
	Dispatched Status = "despachado"

	// Delivered is terminal.
	Delivered Status = "entregado"

	// Cancelled is terminal. Cancelled orders are kept, never deleted.
	Cancelled Status = "cancelado"
)

var validStatuses = map[Status]struct{}{
	Pending:      {},
	Confirmed:    {},
	InProduction: {},
	Dispatched:   {},
	Delivered:    {},
	Cancelled:    {},
}

// AutoDispatchableStatuses returns the statuses the auto-dispatch sweep escalates.
func AutoDispatchableStatuses() []Status {
	return []Status{Pending, Confirmed, InProduction}
}

// ParseStatus converts external input into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := validStatuses[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsAutoDispatchable reports whether the auto-dispatch sweep may escalate s.
func (s Status) IsAutoDispatchable() bool {
	return s == Pending || s == Confirmed || s == InProduction
}

// TransitionTo returns next if the move from s is allowed.
//
// Returns:
//   - (next, nil) when s is not terminal and next is valid
//   - (s, nil) when next equals s
//   - ("", error) when next is invalid or s is terminal
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if next == s {
		return s, nil
	}
	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and cannot change to %s", s, next),
		)
	}
	return next, nil
}

// Cancel transitions to Cancelled. Cancelling a cancelled order is a no-op;
// a delivered order cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}

// Dispatch transitions an auto-dispatchable status to Dispatched. Dispatched
// stays Dispatched; any other status is rejected.
func (s Status) Dispatch() (Status, error) {
	if s == Dispatched || s.IsAutoDispatchable() {
		return Dispatched, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to dispatch", s),
	)
}
