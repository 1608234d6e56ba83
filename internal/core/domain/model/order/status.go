package order

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the shipping-decision state of an order.
// It implements a small state machine that keeps order records consistent
// with their shipping assignment.
//
// State transitions:
//
//	Pending ──┬──> Assigned
//	          │       │ ↑
//	          │       ↓ │
//	          └──> Unassigned
//
// Assigned and Unassigned may transition into each other because the batch
// pipeline is deterministic and may be re-run over the same snapshot; a
// re-run re-derives the same outcome.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of an order awaiting a batch run.
	StatusPending

	// StatusAssigned indicates the batch selected a carrier service for the order.
	StatusAssigned

	// StatusUnassigned indicates the batch found no feasible service across
	// any carrier. This is an explicit outcome, not an error.
	StatusUnassigned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusAssigned:   "Assigned",
		StatusUnassigned: "Unassigned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "Pending",
		StatusAssigned:   "Assigned",
		StatusUnassigned: "Unassigned",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Assigned, and Unassigned.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateDecide checks if the status allows recording a batch decision
// without performing the transition. Any valid status may be re-decided
// because batch runs are deterministic over a fixed snapshot.
func (s Status) ValidateDecide() error {
	if err := s.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to decide", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveAssignment validates consistency between order status and
// shipping assignment presence.
//
// Business rules:
//   - Pending and Unassigned orders must not carry an assignment
//   - Assigned orders must carry an assignment
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && s != StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assignment", s.String()),
		)
	}

	if !assigned && s == StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assignment", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
// Valid from any decided or pending status; invalid from Unknown.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateDecide(); err != nil {
		return 0, err
	}

	return StatusAssigned, nil
}

// MarkUnassigned transitions the status to Unassigned.
// Valid from any decided or pending status; invalid from Unknown.
func (s Status) MarkUnassigned() (Status, error) {
	if err := s.ValidateDecide(); err != nil {
		return 0, err
	}

	return StatusUnassigned, nil
}
