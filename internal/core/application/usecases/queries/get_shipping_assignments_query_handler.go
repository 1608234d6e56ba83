package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShippingAssignmentsQueryHandler retrieves batch assignment outcomes from the database.
// Returns all decided orders so callers see the complete left-joined result
// set, including explicitly unassigned orders.
//
// Example:
//
//	handler := NewGetShippingAssignmentsQueryHandler(db)
//	query := NewGetShippingAssignmentsQuery()
//
//	assignments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get assignments: %v", err)
//	    return err
//	}
type GetShippingAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShippingAssignmentsQueryHandler creates a handler for assignment outcome queries.
// Requires a GORM database connection for query execution.
func NewGetShippingAssignmentsQueryHandler(db *gorm.DB) GetShippingAssignmentsQueryHandler {
	return GetShippingAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all decided orders.
// Returns orders in Assigned or Unassigned status, sorted by order ID.
// Shipping fields stay nil for unassigned orders.
func (h GetShippingAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShippingAssignmentsQuery,
) ([]GetShippingAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetShippingAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			carrier,
			service_type,
			cost_per_package
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY id
	`, order.StatusAssigned, order.StatusUnassigned).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assignment GetShippingAssignmentsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&assignment.Carrier,
			&assignment.ServiceType,
			&assignment.CostPerPackage,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		assignment.ID = orderID
		assignment.Status = order.Status(status).String()

		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
