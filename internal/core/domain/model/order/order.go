package order

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order awaiting a shipping decision.
// It is the aggregate root that carries the precomputed delivery features
// handed over by the upstream data-preparation stage and, after a batch run,
// the resulting shipping assignment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Order date and promised delivery date must be set, with the promise
//     not preceding the order date
//   - Days to deliver is non-negative (precomputed upstream)
//   - Destination distance is a valid positive distance
//   - Package count is positive
//   - Status and assignment presence stay consistent: only Assigned orders
//     carry an assignment
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// dateOrdered is when the order was placed
	dateOrdered time.Time

	// promisedDeliveryDate is the delivery promise given to the customer
	promisedDeliveryDate time.Time

	// daysToDeliver is the precomputed number of days available for transit
	daysToDeliver int

	// distanceToDestination is the destination distance in miles
	distanceToDestination kernel.Miles

	// packageCount is the number of packages in the order
	packageCount int

	// status is the current shipping-decision state
	status Status

	// assignment is the shipping decision (nil while pending or unassigned)
	assignment *Assignment

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - dateOrdered: when the order was placed (must be set)
//   - promisedDeliveryDate: delivery promise (must not precede dateOrdered)
//   - daysToDeliver: precomputed transit budget in days (must be ≥ 0)
//   - distanceToDestination: destination distance (must be valid)
//   - packageCount: number of packages (must be positive)
//
// Returns a validation error aggregating every violated rule if any
// parameter is invalid.
func NewOrder(
	id kernel.UUID,
	dateOrdered time.Time,
	promisedDeliveryDate time.Time,
	daysToDeliver int,
	distanceToDestination kernel.Miles,
	packageCount int,
) (*Order, error) {
	order := &Order{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setDates(dateOrdered, promisedDeliveryDate),
		order.setDaysToDeliver(daysToDeliver),
		order.setDistanceToDestination(distanceToDestination),
		order.setPackageCount(packageCount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its decided status and shipping assignment. The restored order
// behaves identically to one built through normal domain operations.
//
// The status must be consistent with the assignment: Assigned orders must
// carry an assignment, Pending and Unassigned orders must not.
func RestoreOrder(
	id kernel.UUID,
	dateOrdered time.Time,
	promisedDeliveryDate time.Time,
	daysToDeliver int,
	distanceToDestination kernel.Miles,
	packageCount int,
	status Status,
	assignment *Assignment,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setDates(dateOrdered, promisedDeliveryDate),
		order.setDaysToDeliver(daysToDeliver),
		order.setDistanceToDestination(distanceToDestination),
		order.setPackageCount(packageCount),
		order.setStatusWithAssignment(status, assignment),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DateOrdered returns when the order was placed.
func (o *Order) DateOrdered() time.Time {
	return o.dateOrdered
}

// PromisedDeliveryDate returns the delivery promise given to the customer.
func (o *Order) PromisedDeliveryDate() time.Time {
	return o.promisedDeliveryDate
}

// DaysToDeliver returns the precomputed transit budget in days.
func (o *Order) DaysToDeliver() int {
	return o.daysToDeliver
}

// DistanceToDestination returns the destination distance.
func (o *Order) DistanceToDestination() kernel.Miles {
	return o.distanceToDestination
}

// PackageCount returns the number of packages in the order.
func (o *Order) PackageCount() int {
	return o.packageCount
}

// Status returns the current shipping-decision state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Assignment returns the shipping decision, or nil while the order is
// pending or explicitly unassigned.
func (o *Order) Assignment() *Assignment {
	return o.assignment
}

// Assign records the winning carrier service for the order and moves the
// status to Assigned. Re-assignment is allowed because batch runs are
// deterministic and may re-derive the same decision.
func (o *Order) Assign(assignment Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = &assignment
	return nil
}

// MarkUnassigned records the explicit "no feasible service" outcome and
// clears any previous assignment. This is a terminal batch outcome, not an
// error: the order row is preserved with absent shipping fields.
func (o *Order) MarkUnassigned() error {
	newStatus, err := o.status.MarkUnassigned()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDates(dateOrdered time.Time, promisedDeliveryDate time.Time) error {
	if dateOrdered.IsZero() {
		return errs.NewValueIsRequiredError("dateOrdered")
	}
	if promisedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("promisedDeliveryDate")
	}
	if promisedDeliveryDate.Before(dateOrdered) {
		return errs.NewValueIsInvalidErrorWithCause("promisedDeliveryDate",
			fmt.Errorf("%s is before order date %s",
				promisedDeliveryDate.Format(time.DateOnly), dateOrdered.Format(time.DateOnly)))
	}

	o.dateOrdered = dateOrdered
	o.promisedDeliveryDate = promisedDeliveryDate
	return nil
}

func (o *Order) setDaysToDeliver(daysToDeliver int) error {
	if daysToDeliver < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"daysToDeliver", fmt.Errorf("%d is negative", daysToDeliver))
	}
	o.daysToDeliver = daysToDeliver
	return nil
}

func (o *Order) setDistanceToDestination(distance kernel.Miles) error {
	if err := distance.Validate(); err != nil {
		return err
	}
	o.distanceToDestination = distance
	return nil
}

func (o *Order) setPackageCount(packageCount int) error {
	if packageCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"packageCount", fmt.Errorf("%d is not greater than 0", packageCount))
	}
	o.packageCount = packageCount
	return nil
}

func (o *Order) setStatusWithAssignment(status Status, assignment *Assignment) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if assignment != nil {
		if err := assignment.Validate(); err != nil {
			return err
		}
	}

	if err := status.ValidateCanHaveAssignment(assignment != nil); err != nil {
		return err
	}

	o.status = status
	o.assignment = assignment
	return nil
}
