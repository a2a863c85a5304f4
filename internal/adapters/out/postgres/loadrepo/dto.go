// Package loadrepo provides data transfer objects and mapping functions for load persistence.
// This package implements the repository pattern for the load domain aggregate, handling
// the conversion between domain entities and database representations.
package loadrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Maps load domain entities to relational database tables with indexing for
// the hot query paths: the available-loads board (status, vehicle type,
// weight) and the per-actor listings (created_by, assigned_to).
type LoadDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedBy           uuid.UUID  `gorm:"type:uuid;index"`
	AssignedTo          *uuid.UUID `gorm:"type:uuid;index"`
	Origin              string
	Destination         string
	OriginLat           *float64
	OriginLng           *float64
	DestinationLat      *float64
	DestinationLng      *float64
	CargoType           string
	Weight              float64 `gorm:"index"`
	Price               float64
	VehicleTypeRequired string `gorm:"index"`
	PickupDate          time.Time
	Mode                int
	Status              int `gorm:"index"`
	PickedUpAt          *time.Time
	DeliveredAt         *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for load entities.
// Overrides GORM's default naming convention to use "loads".
func (LoadDTO) TableName() string {
	return "loads"
}

// HistoryDTO represents one row of a load's append-only transition log.
// The auto-incrementing primary key preserves the commit order of entries
// for a load.
type HistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	LoadID    uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	ActorID   uuid.UUID `gorm:"type:uuid"`
	Timestamp time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "load_history"
}

// fromDomain converts a load domain aggregate to its database representation.
// History rows are mapped separately because they are append-only.
func fromDomain(aggregate *load.Load) LoadDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	details := aggregate.Details()
	dto := LoadDTO{
		ID:                  aggregate.ID().Bytes(),
		CreatedBy:           aggregate.CreatedBy().Bytes(),
		AssignedTo:          assignedTo,
		Origin:              details.Origin,
		Destination:         details.Destination,
		CargoType:           details.CargoType,
		Weight:              details.Weight,
		Price:               details.Price,
		VehicleTypeRequired: details.VehicleTypeRequired,
		PickupDate:          details.PickupDate,
		Mode:                int(details.Mode),
		Status:              int(aggregate.Status()),
		PickedUpAt:          aggregate.PickedUpAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}

	if point := details.OriginPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.OriginLat, dto.OriginLng = &lat, &lng
	}
	if point := details.DestinationPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.DestinationLat, dto.DestinationLng = &lat, &lng
	}

	return dto
}

// historyFromDomain converts one history entry to its database row.
func historyFromDomain(loadID kernel.UUID, entry load.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		LoadID:    loadID.Bytes(),
		Status:    int(entry.Status()),
		ActorID:   entry.ActorID().Bytes(),
		Timestamp: entry.Timestamp(),
	}
}

// toDomain converts a database DTO and its history rows to a load domain
// aggregate using RestoreLoad.
func toDomain(dto LoadDTO, historyDTOs []HistoryDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		haulerID, assigneeErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assignedTo = &haulerID
	}

	details := load.Details{
		Origin:              dto.Origin,
		Destination:         dto.Destination,
		CargoType:           dto.CargoType,
		Weight:              dto.Weight,
		Price:               dto.Price,
		VehicleTypeRequired: dto.VehicleTypeRequired,
		PickupDate:          dto.PickupDate,
		Mode:                load.Mode(dto.Mode),
	}

	if dto.OriginLat != nil && dto.OriginLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.OriginLat, *dto.OriginLng)
		if pointErr != nil {
			return nil, pointErr
		}
		details.OriginPoint = &point
	}
	if dto.DestinationLat != nil && dto.DestinationLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DestinationLat, *dto.DestinationLng)
		if pointErr != nil {
			return nil, pointErr
		}
		details.DestinationPoint = &point
	}

	history := make([]load.HistoryEntry, 0, len(historyDTOs))
	for _, row := range historyDTOs {
		actorID, actorErr := kernel.UUIDFromBytes(row.ActorID[:])
		if actorErr != nil {
			return nil, actorErr
		}

		entry, entryErr := load.NewHistoryEntry(load.Status(row.Status), actorID, row.Timestamp)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return load.RestoreLoad(id, createdBy, assignedTo, details,
		load.Status(dto.Status), dto.PickedUpAt, dto.DeliveredAt, history)
}
