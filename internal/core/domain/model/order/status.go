package order

import (
	"fmt"
	"strings"
	"time"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of a kitchen order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──> Cancelled
//
// Cancellation is allowed from every non-terminal state. Completed and
// Cancelled are terminal and have no outgoing transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for kitchen confirmation.
	Pending

	// Confirmed indicates the kitchen has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is actively working on the order.
	Preparing

	// Ready indicates all preparation is done and the order awaits pickup.
	Ready

	// Completed indicates the order has been served.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getStatusTransitions returns the allowed target statuses for each status.
// Terminal statuses map to an empty set.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its string representation.
// The comparison is case-insensitive, so "pending", "Pending", and "PENDING"
// all parse to Pending. An empty string fails with a ValueIsRequiredError;
// an unrecognized string fails with a ValueIsInvalidError. Parsing never
// silently defaults to any status.
func StatusFromString(s string) (Status, error) {
	if s == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to target. It returns false for invalid statuses on either
// side and for any pair not present in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := getStatusTransitions()[s]
	if !ok {
		return false
	}

	for _, next := range allowed {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition is allowed.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, error) if either status is invalid or the transition is not
//     in the state machine; the error names both states
//
// The method has no side effects on failure.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewBusinessRuleViolationErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("cannot transition from %s to %s", s, target),
		)
	}

	return target, nil
}

// IsTerminal reports whether the status has no outgoing transitions.
// Completed and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the order still counts against kitchen load.
// All valid non-terminal statuses are active.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// IsInKitchen reports whether the order is physically being worked in the
// kitchen: Confirmed, Preparing, or Ready.
func (s Status) IsInKitchen() bool {
	return s == Confirmed || s == Preparing || s == Ready
}

// PriorityMultiplier returns the urgency weight applied to orders in this
// status. The multiplier rises with kitchen progress: work already under way
// is more expensive to delay than work not yet started.
func (s Status) PriorityMultiplier() float64 {
	switch s {
	case Confirmed:
		return 1.2
	case Preparing:
		return 1.5
	case Ready:
		return 2.0
	case Unknown, Pending, Completed, Cancelled:
		return 1.0
	default:
		return 1.0
	}
}

// EstimatedTimeRemaining returns the expected time until the order is
// completed from this status. Terminal statuses return zero.
func (s Status) EstimatedTimeRemaining() time.Duration {
	switch s {
	case Pending:
		return 40 * time.Minute
	case Confirmed:
		return 35 * time.Minute
	case Preparing:
		return 20 * time.Minute
	case Ready:
		return 5 * time.Minute
	case Unknown, Completed, Cancelled:
		return 0
	default:
		return 0
	}
}

// SortOrder returns the display rank for kitchen queue views. Higher values
// sort first: orders being prepared top the queue, then ready, confirmed,
// pending, and finally terminal orders.
func (s Status) SortOrder() int {
	switch s {
	case Preparing:
		return 5
	case Ready:
		return 4
	case Confirmed:
		return 3
	case Pending:
		return 2
	case Completed:
		return 1
	case Unknown, Cancelled:
		return 0
	default:
		return 0
	}
}
