package carrier

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for service option operations.
var (
	// ErrServiceTypeIsRequired is returned when creating a service option without a service type.
	ErrServiceTypeIsRequired = errs.NewValueIsRequiredError("serviceType")
	// ErrServiceOptionIsNotConstructed is returned when using an improperly initialized ServiceOption.
	ErrServiceOptionIsNotConstructed = errors.New(
		"ServiceOption must be created via NewServiceOption constructor")
)

// ServiceOption represents one delivery tier offered by a carrier, such as
// ground, priority, or air. It is an immutable value object describing the
// tier's per-package cost, its transit time, and how far it reaches.
//
// Invariants:
//   - Service type identifier is non-empty (unique within a carrier,
//     enforced by the Carrier aggregate)
//   - Cost per package is positive
//   - Days in transit is positive
//   - Total reach equals days in transit multiplied by daily mileage
//
// The total reach is derived at construction rather than accepted from the
// caller, so the product invariant cannot be violated.
type ServiceOption struct {
	// serviceType identifies the delivery tier within its carrier
	serviceType string
	// costPerPackage is the shipping cost per package in whole currency units
	costPerPackage int
	// daysInTransit is how many days the service needs to deliver
	daysInTransit int
	// milesPerDay is the distance the service covers each transit day
	milesPerDay kernel.Miles
	// totalMiles is the derived full reach of the service
	totalMiles kernel.Miles
	// guard ensures the service option was created via its constructor
	guard guard.ConstructorGuard
}

// NewServiceOption creates a validated ServiceOption.
//
// Parameters:
//   - serviceType: tier identifier, must be non-empty
//   - costPerPackage: per-package cost, must be positive
//   - daysInTransit: transit time in days, must be positive
//   - milesPerDay: daily mileage, must be a valid positive distance
//
// The total reach is computed as daysInTransit × milesPerDay.
func NewServiceOption(
	serviceType string,
	costPerPackage int,
	daysInTransit int,
	milesPerDay kernel.Miles,
) (ServiceOption, error) {
	option := ServiceOption{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		option.setServiceType(serviceType),
		option.setCostPerPackage(costPerPackage),
		option.setDaysInTransit(daysInTransit),
		option.setMilesPerDay(milesPerDay),
	); err != nil {
		return ServiceOption{}, err
	}

	totalMiles, err := milesPerDay.Times(daysInTransit)
	if err != nil {
		return ServiceOption{}, err
	}
	option.totalMiles = totalMiles

	return option, nil
}

// Validate checks if the ServiceOption was properly constructed.
// The zero value is invalid and fails this validation.
func (s ServiceOption) Validate() error {
	return s.guard.Validate(ErrServiceOptionIsNotConstructed)
}

// ServiceType returns the tier identifier, unique within its carrier.
func (s ServiceOption) ServiceType() string {
	return s.serviceType
}

// CostPerPackage returns the per-package shipping cost.
func (s ServiceOption) CostPerPackage() int {
	return s.costPerPackage
}

// DaysInTransit returns the transit time in days.
func (s ServiceOption) DaysInTransit() int {
	return s.daysInTransit
}

// MilesPerDay returns the distance covered each transit day.
func (s ServiceOption) MilesPerDay() kernel.Miles {
	return s.milesPerDay
}

// TotalMiles returns the full reach of the service, derived as
// days in transit multiplied by daily mileage.
func (s ServiceOption) TotalMiles() kernel.Miles {
	return s.totalMiles
}

// CanDeliver reports whether this service satisfies both delivery constraints
// for an order: its transit time fits within the allowed days to deliver, and
// its total reach covers the destination distance. Both conditions must hold
// simultaneously for the service to be feasible.
//
// Parameters:
//   - daysToDeliver: days remaining until the promised delivery date (≥0)
//   - distance: destination distance of the order
//
// Returns:
//   - bool: true when the service is feasible for the order
//   - error: validation error if the service or distance is improperly constructed
func (s ServiceOption) CanDeliver(daysToDeliver int, distance kernel.Miles) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}

	if s.daysInTransit > daysToDeliver {
		return false, nil
	}

	return s.totalMiles.Covers(distance)
}

func (s *ServiceOption) setServiceType(serviceType string) error {
	if serviceType == "" {
		return ErrServiceTypeIsRequired
	}

	s.serviceType = serviceType
	return nil
}

func (s *ServiceOption) setCostPerPackage(costPerPackage int) error {
	if costPerPackage <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"costPerPackage", fmt.Errorf("%d is not greater than 0", costPerPackage))
	}

	s.costPerPackage = costPerPackage
	return nil
}

func (s *ServiceOption) setDaysInTransit(daysInTransit int) error {
	if daysInTransit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"daysInTransit", fmt.Errorf("%d is not greater than 0", daysInTransit))
	}

	s.daysInTransit = daysInTransit
	return nil
}

func (s *ServiceOption) setMilesPerDay(milesPerDay kernel.Miles) error {
	if err := milesPerDay.Validate(); err != nil {
		return err
	}

	s.milesPerDay = milesPerDay
	return nil
}
