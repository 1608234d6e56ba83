package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrMilesIsNotConstructed is returned when attempting to use an improperly
// initialized Miles value. Miles must be created via the NewMiles constructor.
var ErrMilesIsNotConstructed = errs.NewValueIsRequiredError(
	"miles must be created via NewMiles constructor")

// Miles represents a positive distance in statute miles.
// Miles is an immutable value object used both for order destination
// distances and for service reach (miles covered per day, total miles).
// The zero value of Miles is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	distance, err := kernel.NewMiles(300)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Distance: %s", distance) // Output: 300.0 mi
type Miles struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewMiles creates a new Miles value.
// The value must be strictly positive; zero or negative distances are
// rejected with a validation error.
func NewMiles(value float64) (Miles, error) {
	m := Miles{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setValue(value); err != nil {
		return Miles{}, err
	}

	return m, nil
}

// Validate checks if the Miles value was properly constructed.
// The zero value of Miles is invalid and will fail this validation.
func (m Miles) Validate() error {
	return m.guard.Validate(ErrMilesIsNotConstructed)
}

// Value returns the distance in miles.
// Guaranteed to be positive for properly constructed instances.
func (m Miles) Value() float64 {
	return m.value
}

// String returns a human-readable representation such as "300.0 mi".
// Implements the fmt.Stringer interface.
func (m Miles) String() string {
	return fmt.Sprintf("%.1f mi", m.value)
}

// IsEqual compares two distances for equality.
// Both values must be properly constructed for the comparison to succeed.
func (m Miles) IsEqual(other Miles) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.value == other.value, nil
}

// Covers reports whether this distance reaches at least as far as the given
// distance. Used to check that a service's total reach covers an order's
// destination distance.
func (m Miles) Covers(distance Miles) (bool, error) {
	if err := errors.Join(m.Validate(), distance.Validate()); err != nil {
		return false, err
	}

	return m.value >= distance.value, nil
}

// Times multiplies the distance by a positive whole number of days.
// Used to derive a service's total reach from its daily mileage.
func (m Miles) Times(days int) (Miles, error) {
	if err := m.Validate(); err != nil {
		return Miles{}, err
	}

	if days <= 0 {
		return Miles{}, errs.NewValueIsInvalidErrorWithCause(
			"days", fmt.Errorf("%d is not greater than 0", days))
	}

	return NewMiles(m.value * float64(days))
}

// setValue sets the distance with validation.
// Note: pointer receiver is used for this private setter to enable
// self-encapsulated validation during object construction.
func (m *Miles) setValue(value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"miles", fmt.Errorf("%v is not greater than 0", value))
	}

	m.value = value
	return nil
}
