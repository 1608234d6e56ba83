package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrAddServiceOptionCommandIsNotConstructed = errors.New(
		"AddServiceOptionCommand must be created via NewAddServiceOptionCommand constructor",
	)
	ErrServiceTypeNameIsRequired = errors.New("service type is required")
	ErrCostPerPackageIsInvalid   = errors.New("cost per package must be greater than 0")
	ErrDaysInTransitIsInvalid    = errors.New("days in transit must be greater than 0")
)

// AddServiceOptionCommand represents a request to register a new service
// type in a carrier's catalog, such as "ground" or "air".
type AddServiceOptionCommand struct { //nolint:recvcheck //using for validation
	carrierID      kernel.UUID
	serviceType    string
	costPerPackage int
	daysInTransit  int
	milesPerDay    kernel.Miles

	guard guard.ConstructorGuard
}

// NewAddServiceOptionCommand creates a command to extend a carrier's catalog.
// Validates the carrier ID, the non-empty service type name, the positive
// cost and transit time, and the positive daily mileage.
func NewAddServiceOptionCommand(
	carrierID kernel.UUID,
	serviceType string,
	costPerPackage int,
	daysInTransit int,
	milesPerDay kernel.Miles,
) (AddServiceOptionCommand, error) {
	command := AddServiceOptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setServiceType(serviceType),
		command.setCostPerPackage(costPerPackage),
		command.setDaysInTransit(daysInTransit),
		command.setMilesPerDay(milesPerDay),
	); err != nil {
		return AddServiceOptionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddServiceOptionCommandIsNotConstructed if validation fails.
func (c AddServiceOptionCommand) Validate() error {
	return c.guard.Validate(ErrAddServiceOptionCommandIsNotConstructed)
}

// CarrierID returns the carrier whose catalog is extended.
func (c AddServiceOptionCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// ServiceType returns the name of the new delivery tier.
func (c AddServiceOptionCommand) ServiceType() string {
	return c.serviceType
}

// CostPerPackage returns the per-package cost of the new tier.
func (c AddServiceOptionCommand) CostPerPackage() int {
	return c.costPerPackage
}

// DaysInTransit returns the transit time of the new tier in whole days.
func (c AddServiceOptionCommand) DaysInTransit() int {
	return c.daysInTransit
}

// MilesPerDay returns the distance the new tier covers per transit day.
func (c AddServiceOptionCommand) MilesPerDay() kernel.Miles {
	return c.milesPerDay
}

func (c *AddServiceOptionCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *AddServiceOptionCommand) setServiceType(serviceType string) error {
	if serviceType == "" {
		return ErrServiceTypeNameIsRequired
	}

	c.serviceType = serviceType
	return nil
}

func (c *AddServiceOptionCommand) setCostPerPackage(costPerPackage int) error {
	if costPerPackage <= 0 {
		return ErrCostPerPackageIsInvalid
	}

	c.costPerPackage = costPerPackage
	return nil
}

func (c *AddServiceOptionCommand) setDaysInTransit(daysInTransit int) error {
	if daysInTransit <= 0 {
		return ErrDaysInTransitIsInvalid
	}

	c.daysInTransit = daysInTransit
	return nil
}

func (c *AddServiceOptionCommand) setMilesPerDay(milesPerDay kernel.Miles) error {
	if err := milesPerDay.Validate(); err != nil {
		return err
	}

	c.milesPerDay = milesPerDay
	return nil
}
