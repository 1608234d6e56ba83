// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status. Shipping assignment columns are nullable
// and populated only for orders in Assigned status.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DateOrdered           time.Time `gorm:"type:timestamptz;not null"`
	PromisedDeliveryDate  time.Time `gorm:"type:timestamptz;not null"`
	DaysToDeliver         int       `gorm:"type:int;not null"`
	DistanceToDestination float64   `gorm:"type:double precision;not null"`
	PackageCount          int       `gorm:"type:int;not null"`
	Status                int       `gorm:"type:int;not null;index"`
	Carrier               *string   `gorm:"type:varchar(255)"`
	ServiceType           *string   `gorm:"type:varchar(255)"`
	CostPerPackage        *int      `gorm:"type:int"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional shipping assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		DateOrdered:           aggregate.DateOrdered(),
		PromisedDeliveryDate:  aggregate.PromisedDeliveryDate(),
		DaysToDeliver:         aggregate.DaysToDeliver(),
		DistanceToDestination: aggregate.DistanceToDestination().Value(),
		PackageCount:          aggregate.PackageCount(),
		Status:                int(aggregate.Status()),
	}

	if assignment := aggregate.Assignment(); assignment != nil {
		carrier := assignment.Carrier()
		serviceType := assignment.ServiceType()
		cost := assignment.CostPerPackage()
		dto.Carrier = &carrier
		dto.ServiceType = &serviceType
		dto.CostPerPackage = &cost
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and shipping assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	distance, err := kernel.NewMiles(dto.DistanceToDestination)
	if err != nil {
		return nil, err
	}

	var assignment *order.Assignment
	if dto.Carrier != nil && dto.ServiceType != nil && dto.CostPerPackage != nil {
		restored, assignErr := order.NewAssignment(*dto.Carrier, *dto.ServiceType, *dto.CostPerPackage)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &restored
	}

	return order.RestoreOrder(
		id,
		dto.DateOrdered,
		dto.PromisedDeliveryDate,
		dto.DaysToDeliver,
		distance,
		dto.PackageCount,
		order.Status(dto.Status),
		assignment,
	)
}
