package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShippingAssignmentsQueryIsNotConstructed = errors.New(
	"GetShippingAssignmentsQuery must be created via NewGetShippingAssignmentsQuery constructor",
)

// GetShippingAssignmentsQuery retrieves the outcome of batch assignment runs.
// Returns every decided order: assigned ones with their winning carrier,
// service type and cost, and unassigned ones with absent shipping fields.
//
// Example:
//
//	query := NewGetShippingAssignmentsQuery()
//	handler := NewGetShippingAssignmentsQueryHandler(db)
//
//	assignments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get assignments: %w", err)
//	}
//	for _, a := range assignments {
//	    if a.Carrier == nil {
//	        fmt.Printf("Order %s: unassigned\n", a.ID)
//	        continue
//	    }
//	    fmt.Printf("Order %s: %s %s at %d\n", a.ID, *a.Carrier, *a.ServiceType, *a.CostPerPackage)
//	}
type GetShippingAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShippingAssignmentsQuery creates a query to retrieve batch outcomes.
// This is a parameterless query that fetches all decided orders.
func NewGetShippingAssignmentsQuery() GetShippingAssignmentsQuery {
	return GetShippingAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShippingAssignmentsQueryIsNotConstructed if validation fails.
func (q GetShippingAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingAssignmentsQueryIsNotConstructed)
}

// GetShippingAssignmentsQueryResponse represents one decided order.
// The shipping fields are pointers: nil means the order is unassigned,
// never a sentinel value posing as real data.
type GetShippingAssignmentsQueryResponse struct {
	ID             kernel.UUID
	Status         string
	Carrier        *string
	ServiceType    *string
	CostPerPackage *int
}
