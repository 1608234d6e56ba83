package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrAssignShippingCommandIsNotConstructed = errors.New(
	"AssignShippingCommand must be created via NewAssignShippingCommand constructor",
)

// AssignShippingCommand triggers one batch run of the shipping assignment
// workflow. The run takes every pending order, evaluates every carrier's
// catalog against it, and records a final decision on each order: either a
// winning (carrier, service type, cost) assignment or an explicit
// unassigned outcome.
//
// Example:
//
//	cmd := NewAssignShippingCommand()
//	handler := NewAssignShippingCommandHandler(uowFactory, ranking)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingOrders) {
//	    log.Println("Nothing to assign")
//	}
type AssignShippingCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignShippingCommand creates a new command to trigger a batch
// assignment run. This is a parameterless command; the order and carrier
// sets are read from storage at execution time.
func NewAssignShippingCommand() AssignShippingCommand {
	return AssignShippingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignShippingCommandIsNotConstructed if validation fails.
func (c *AssignShippingCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignShippingCommandIsNotConstructed,
	)
}
