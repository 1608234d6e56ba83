package carrier

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrDuplicateServiceType is returned when adding a service type that the carrier already offers.
	ErrDuplicateServiceType = errors.New("service type already exists for this carrier")
)

// Carrier represents a shipping provider such as fedex, usps, or ups.
// It is an aggregate root that owns an ordered catalog of service options.
//
// Key responsibilities:
//   - Managing carrier identity (ID, name)
//   - Maintaining the service catalog in stable registration order
//   - Enforcing service type uniqueness within the carrier
//
// Catalog order matters: when two services of the same carrier tie on cost
// for an order, the one registered first wins, so the catalog must preserve
// the order in which services were added.
//
// Example usage:
//
//	fedex, err := NewCarrier(kernel.NewUUID(), "fedex")
//	if err != nil {
//	    // Handle construction error
//	}
//	daily, _ := kernel.NewMiles(150)
//	err = fedex.AddServiceOption("ground", 5, 3, daily)
type Carrier struct {
	// id uniquely identifies the carrier
	id kernel.UUID
	// name is the carrier identifier used in rankings and assignments
	name string
	// services is the ordered catalog of delivery tiers
	services []ServiceOption
	// guard ensures the carrier was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrier creates a new Carrier with an empty service catalog.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: carrier identifier (must be non-empty)
//
// Service options are added afterwards via AddServiceOption.
func NewCarrier(id kernel.UUID, name string) (*Carrier, error) {
	carrier := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
	); err != nil {
		return nil, err
	}

	return carrier, nil
}

// RestoreCarrier reconstructs a Carrier aggregate from persistent storage,
// including its full service catalog in stored order. The restored carrier
// behaves identically to one built through normal domain operations.
func RestoreCarrier(id kernel.UUID, name string, services []ServiceOption) (*Carrier, error) {
	carrier := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
		carrier.setServices(services),
	); err != nil {
		return nil, err
	}

	return carrier, nil
}

// Validate checks if the Carrier was properly constructed via NewCarrier.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier identifier (guaranteed non-empty for valid carriers).
func (c *Carrier) Name() string {
	return c.name
}

// Services returns the service catalog in registration order.
// The returned slice is a copy; mutating it does not affect the carrier.
func (c *Carrier) Services() []ServiceOption {
	services := make([]ServiceOption, len(c.services))
	copy(services, c.services)
	return services
}

// AddServiceOption appends a new delivery tier to the carrier's catalog.
// The service type must not already exist for this carrier; catalog order
// is preserved for deterministic tie-breaking.
//
// Parameters:
//   - serviceType: tier identifier, unique within the carrier
//   - costPerPackage: per-package cost, positive
//   - daysInTransit: transit time in days, positive
//   - milesPerDay: daily mileage
//
// Returns an error if the service option is invalid or the service type is
// already registered.
func (c *Carrier) AddServiceOption(
	serviceType string,
	costPerPackage int,
	daysInTransit int,
	milesPerDay kernel.Miles,
) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, existing := range c.services {
		if existing.ServiceType() == serviceType {
			return fmt.Errorf("%w: %s", ErrDuplicateServiceType, serviceType)
		}
	}

	option, err := NewServiceOption(serviceType, costPerPackage, daysInTransit, milesPerDay)
	if err != nil {
		return err
	}

	c.services = append(c.services, option)
	return nil
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setServices(services []ServiceOption) error {
	seen := make(map[string]struct{}, len(services))
	for _, service := range services {
		if err := service.Validate(); err != nil {
			return err
		}
		if _, ok := seen[service.ServiceType()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateServiceType, service.ServiceType())
		}
		seen[service.ServiceType()] = struct{}{}
	}

	c.services = make([]ServiceOption, len(services))
	copy(c.services, services)
	return nil
}
