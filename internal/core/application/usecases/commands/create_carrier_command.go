package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrier name is required")
)

// CreateCarrierCommand represents a request to register a new carrier.
// The carrier starts with an empty service catalog; service types are added
// through AddServiceOptionCommand.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
// Validates that the carrier ID is valid and the name is not empty.
func NewCreateCarrierCommand(carrierID kernel.UUID, name string) (CreateCarrierCommand, error) {
	carrierCommand := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrierCommand.setCarrierID(carrierID),
		carrierCommand.setName(name),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return carrierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCarrierCommandIsNotConstructed if validation fails.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the unique identifier for the carrier.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier's unique name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrCarrierNameIsRequired
	}

	c.name = name
	return nil
}
