package haulerrepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHaulerRepository implements HaulerRepository using GORM.
type GormHaulerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHaulerRepository creates a new GORM hauler repository.
func NewGormHaulerRepository(db *gorm.DB, tracker aggregateTracker) *GormHaulerRepository {
	return &GormHaulerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hauler to the database.
func (r *GormHaulerRepository) Add(ctx context.Context, aggregate *hauler.Hauler) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing hauler to the database, including ledger
// movements applied in memory. Select("*") forces boolean and zero-valued
// columns to be written as well.
func (r *GormHaulerRepository) Update(ctx context.Context, aggregate *hauler.Hauler) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&HaulerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hauler by ID.
func (r *GormHaulerRepository) Get(ctx context.Context, id kernel.UUID) (*hauler.Hauler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HaulerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hauler", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveCapacity debits the ledger with a conditional arithmetic UPDATE.
//
// The WHERE clause re-states the ledger rules so the debit and its
// precondition are a single statement: available capacity must cover the
// weight, and a FULL-mode load requires an empty vehicle. A failed condition
// affects zero rows; the re-read decides which rule was violated.
func (r *GormHaulerRepository) ReserveCapacity(ctx context.Context, id kernel.UUID, weight float64, mode load.Mode) error {
	if err := errors.Join(id.Validate(), mode.Validate()); err != nil {
		return err
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", weight))
	}

	query := r.db.WithContext(ctx).Model(&HaulerDTO{}).
		Where("id = ? AND available_capacity >= ?", id.Bytes(), weight)
	if mode == load.ModeFull {
		query = query.Where("available_capacity = total_capacity")
	}

	result := query.Update("available_capacity", gorm.Expr("available_capacity - ?", weight))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto HaulerDTO
		err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("hauler", id.String())
		}
		if err != nil {
			return err
		}

		if mode == load.ModeFull && dto.AvailableCapacity != dto.TotalCapacity {
			return hauler.NewVehicleNotEmptyError(dto.AvailableCapacity, dto.TotalCapacity)
		}
		return hauler.NewInsufficientCapacityError(dto.AvailableCapacity, weight)
	}

	return nil
}

// ReleaseCapacity credits the ledger back, clamped at the vehicle's total.
func (r *GormHaulerRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID, weight float64) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", weight))
	}

	result := r.db.WithContext(ctx).Model(&HaulerDTO{}).
		Where("id = ?", id.Bytes()).
		Update("available_capacity", gorm.Expr("LEAST(total_capacity, available_capacity + ?)", weight))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hauler", id.String())
	}

	return nil
}

// GetAll retrieves every hauler profile.
func (r *GormHaulerRepository) GetAll(ctx context.Context) ([]*hauler.Hauler, error) {
	var dtos []HaulerDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllForUpdate retrieves every hauler profile under SELECT ... FOR UPDATE.
// Concurrent ledger writes on the locked rows block until the surrounding
// transaction finishes.
func (r *GormHaulerRepository) GetAllForUpdate(ctx context.Context) ([]*hauler.Hauler, error) {
	var dtos []HaulerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func toDomainList(dtos []HaulerDTO) ([]*hauler.Hauler, error) {
	haulers := make([]*hauler.Hauler, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		haulers = append(haulers, h)
	}

	return haulers, nil
}
