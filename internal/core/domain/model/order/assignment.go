package order

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly
// initialized Assignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment constructor")

// Assignment is the shipping decision attached to an order after a batch
// run: the winning carrier, its service type, and the per-package cost.
// It is an immutable value object; an order with no Assignment is
// explicitly unassigned.
type Assignment struct {
	// carrier is the winning shipping provider
	carrier string
	// serviceType is the selected delivery tier of the carrier
	serviceType string
	// costPerPackage is the shipping cost of the selected tier
	costPerPackage int
	// guard ensures the assignment was created via its constructor
	guard guard.ConstructorGuard
}

// NewAssignment creates a validated shipping assignment.
// Carrier and service type must be non-empty and the cost must be positive,
// so an assignment can never masquerade as an infeasibility sentinel.
func NewAssignment(carrier string, serviceType string, costPerPackage int) (Assignment, error) {
	assignment := Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setCarrier(carrier),
		assignment.setServiceType(serviceType),
		assignment.setCostPerPackage(costPerPackage),
	); err != nil {
		return Assignment{}, err
	}

	return assignment, nil
}

// Validate checks if the Assignment was properly constructed.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// Carrier returns the winning carrier identifier.
func (a Assignment) Carrier() string {
	return a.carrier
}

// ServiceType returns the selected delivery tier.
func (a Assignment) ServiceType() string {
	return a.serviceType
}

// CostPerPackage returns the shipping cost of the selected tier.
func (a Assignment) CostPerPackage() int {
	return a.costPerPackage
}

// IsEqual compares two assignments field by field.
func (a Assignment) IsEqual(other Assignment) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a.carrier == other.carrier &&
		a.serviceType == other.serviceType &&
		a.costPerPackage == other.costPerPackage, nil
}

func (a *Assignment) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	a.carrier = carrier
	return nil
}

func (a *Assignment) setServiceType(serviceType string) error {
	if serviceType == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}

	a.serviceType = serviceType
	return nil
}

func (a *Assignment) setCostPerPackage(costPerPackage int) error {
	if costPerPackage <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"costPerPackage", fmt.Errorf("%d is not greater than 0", costPerPackage))
	}

	a.costPerPackage = costPerPackage
	return nil
}
