package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDateOrderedIsRequired   = errors.New("date ordered is required")
	ErrPromisedDateIsRequired  = errors.New("promised delivery date is required")
	ErrDaysToDeliverIsInvalid  = errors.New("days to deliver must not be negative")
	ErrPackageCountIsInvalid   = errors.New("package count must be greater than 0")
	ErrPromisedDateBeforeOrder = errors.New("promised delivery date must not precede the order date")
)

// CreateOrderCommand represents a request to register a new shipping order.
// Encapsulates the delivery deadline and destination distance that later
// drive the batch assignment decision.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	distance, _ := kernel.NewMiles(300)
//	cmd, err := NewCreateOrderCommand(orderID, ordered, promised, 2, distance, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	dateOrdered           time.Time
	promisedDeliveryDate  time.Time
	daysToDeliver         int
	distanceToDestination kernel.Miles
	packageCount          int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipping order.
// Validates the identifier, the date pair, the non-negative transit budget,
// the positive destination distance and the positive package count.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	dateOrdered time.Time,
	promisedDeliveryDate time.Time,
	daysToDeliver int,
	distanceToDestination kernel.Miles,
	packageCount int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDates(dateOrdered, promisedDeliveryDate),
		orderCommand.setDaysToDeliver(daysToDeliver),
		orderCommand.setDistance(distanceToDestination),
		orderCommand.setPackageCount(packageCount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DateOrdered returns the date the order was placed.
func (c CreateOrderCommand) DateOrdered() time.Time {
	return c.dateOrdered
}

// PromisedDeliveryDate returns the date delivery was promised by.
func (c CreateOrderCommand) PromisedDeliveryDate() time.Time {
	return c.promisedDeliveryDate
}

// DaysToDeliver returns the remaining transit budget in whole days.
func (c CreateOrderCommand) DaysToDeliver() int {
	return c.daysToDeliver
}

// DistanceToDestination returns the shipping distance to the destination.
func (c CreateOrderCommand) DistanceToDestination() kernel.Miles {
	return c.distanceToDestination
}

// PackageCount returns the number of packages in the order.
func (c CreateOrderCommand) PackageCount() int {
	return c.packageCount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDates(dateOrdered, promisedDeliveryDate time.Time) error {
	if dateOrdered.IsZero() {
		return ErrDateOrderedIsRequired
	}
	if promisedDeliveryDate.IsZero() {
		return ErrPromisedDateIsRequired
	}
	if promisedDeliveryDate.Before(dateOrdered) {
		return ErrPromisedDateBeforeOrder
	}

	c.dateOrdered = dateOrdered
	c.promisedDeliveryDate = promisedDeliveryDate
	return nil
}

func (c *CreateOrderCommand) setDaysToDeliver(daysToDeliver int) error {
	if daysToDeliver < 0 {
		return ErrDaysToDeliverIsInvalid
	}

	c.daysToDeliver = daysToDeliver
	return nil
}

func (c *CreateOrderCommand) setDistance(distance kernel.Miles) error {
	if err := distance.Validate(); err != nil {
		return err
	}

	c.distanceToDestination = distance
	return nil
}

func (c *CreateOrderCommand) setPackageCount(packageCount int) error {
	if packageCount <= 0 {
		return ErrPackageCountIsInvalid
	}

	c.packageCount = packageCount
	return nil
}
