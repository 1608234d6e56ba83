// Package carrierrepo provides data transfer objects and mapping functions for carrier persistence.
// This package implements the repository pattern for the carrier domain aggregate, handling
// the conversion between domain entities and database representations.
package carrierrepo

import (
	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
// Maps carrier domain entities to relational database tables with the service
// catalog stored in a child table.
type CarrierDTO struct {
	ID       uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name     string             `gorm:"type:varchar(255);not null;uniqueIndex"`
	Services []ServiceOptionDTO `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carrier entities.
// Overrides GORM's default naming convention to use "carriers" instead of "carrier_dtos".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// ServiceOptionDTO represents the database structure for persisting service types.
// Uniqueness of the service type within a carrier is enforced by the composite
// primary key; Position preserves catalog registration order.
type ServiceOptionDTO struct {
	CarrierID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceType    string    `gorm:"type:varchar(255);primaryKey"`
	CostPerPackage int       `gorm:"type:int;not null"`
	DaysInTransit  int       `gorm:"type:int;not null"`
	MilesPerDay    float64   `gorm:"type:double precision;not null"`
	Position       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for service type entities.
// Overrides GORM's default naming convention to use "service_options".
func (ServiceOptionDTO) TableName() string {
	return "service_options"
}

// fromDomain converts a carrier domain aggregate to its database representation.
// Maps the full service catalog, recording each entry's position to keep
// registration order across round trips.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	carrierID := aggregate.ID().Bytes()
	catalog := aggregate.Services()
	services := make([]ServiceOptionDTO, 0, len(catalog))

	for position, service := range catalog {
		services = append(services, ServiceOptionDTO{
			CarrierID:      carrierID,
			ServiceType:    service.ServiceType(),
			CostPerPackage: service.CostPerPackage(),
			DaysInTransit:  service.DaysInTransit(),
			MilesPerDay:    service.MilesPerDay().Value(),
			Position:       position,
		})
	}

	return CarrierDTO{
		ID:       carrierID,
		Name:     aggregate.Name(),
		Services: services,
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
// Reconstructs the complete aggregate including the service catalog using RestoreCarrier.
// Service rows must already be sorted by position.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	services := make([]carrier.ServiceOption, 0, len(dto.Services))
	for _, serviceDto := range dto.Services {
		milesPerDay, milesErr := kernel.NewMiles(serviceDto.MilesPerDay)
		if milesErr != nil {
			return nil, milesErr
		}

		service, serviceErr := carrier.NewServiceOption(
			serviceDto.ServiceType,
			serviceDto.CostPerPackage,
			serviceDto.DaysInTransit,
			milesPerDay,
		)
		if serviceErr != nil {
			return nil, serviceErr
		}

		services = append(services, service)
	}

	return carrier.RestoreCarrier(id, dto.Name, services)
}
