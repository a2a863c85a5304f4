// Package haulerrepo provides data transfer objects and mapping functions for hauler persistence.
// This package implements the repository pattern for the hauler domain aggregate, handling
// the conversion between domain entities and database representations.
package haulerrepo

import (
	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HaulerDTO represents the database structure for persisting hauler
// aggregates, including the capacity ledger columns.
type HaulerDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleType       string    `gorm:"index"`
	TotalCapacity     float64
	AvailableCapacity float64
	LocationLat       float64
	LocationLng       float64
	Online            bool
}

// TableName specifies the database table name for hauler entities.
// Overrides GORM's default naming convention to use "haulers".
func (HaulerDTO) TableName() string {
	return "haulers"
}

// fromDomain converts a hauler domain aggregate to its database representation.
func fromDomain(aggregate *hauler.Hauler) HaulerDTO {
	return HaulerDTO{
		ID:                aggregate.ID().Bytes(),
		VehicleType:       aggregate.VehicleType(),
		TotalCapacity:     aggregate.TotalCapacity(),
		AvailableCapacity: aggregate.AvailableCapacity(),
		LocationLat:       aggregate.Location().Lat(),
		LocationLng:       aggregate.Location().Lng(),
		Online:            aggregate.IsOnline(),
	}
}

// toDomain converts a database DTO to a hauler domain aggregate using
// RestoreHauler, which re-checks the ledger invariant on the way in.
func toDomain(dto HaulerDTO) (*hauler.Hauler, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.LocationLat, dto.LocationLng)
	if err != nil {
		return nil, err
	}

	return hauler.RestoreHauler(id, dto.VehicleType,
		dto.TotalCapacity, dto.AvailableCapacity, location, dto.Online)
}
