package loadrepo

import (
	"context"
	"errors"
	"math"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// candidateFactor multiplies the page cap on geo-filtered board queries.
// The SQL side only narrows to the bounding box; the in-memory distance cut
// discards corner candidates, so the query fetches extra rows per page.
const candidateFactor = 5

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load and its initial history entry to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	history := aggregate.History()
	historyDTO := historyFromDomain(aggregate.ID(), history[len(history)-1])
	if err := r.db.WithContext(ctx).Create(&historyDTO).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Transition persists a lifecycle transition with a conditional write.
//
// The UPDATE carries the expected status in its WHERE clause, so when two
// writers race on the same (id, expected) pair the database lets exactly one
// through. The loser observes zero affected rows and re-reads the row to
// report what actually happened.
func (r *GormLoadRepository) Transition(ctx context.Context, aggregate *load.Load, expected load.Status) error {
	if err := errors.Join(aggregate.Validate(), expected.Validate()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	updates := map[string]any{
		"status":       dto.Status,
		"assigned_to":  dto.AssignedTo,
		"picked_up_at": dto.PickedUpAt,
		"delivered_at": dto.DeliveredAt,
	}

	result := r.db.WithContext(ctx).Model(&LoadDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var observed LoadDTO
		err := r.db.WithContext(ctx).Select("status").First(&observed, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("load", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return load.NewStatusConflictError(expected, load.Status(observed.Status))
	}

	history := aggregate.History()
	historyDTO := historyFromDomain(aggregate.ID(), history[len(history)-1])
	if err := r.db.WithContext(ctx).Create(&historyDTO).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a load by ID, including its full history log.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	var historyDTOs []HistoryDTO
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&historyDTOs, "load_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, historyDTOs)
}

// GetAllByCreator retrieves all loads posted by a business actor, newest first.
func (r *GormLoadRepository) GetAllByCreator(ctx context.Context, creatorID kernel.UUID) ([]*load.Load, error) {
	if err := creatorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&dtos, "created_by = ?", creatorID.Bytes()).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(ctx, dtos)
}

// GetAllByAssignee retrieves all loads assigned to a hauler, newest first.
func (r *GormLoadRepository) GetAllByAssignee(ctx context.Context, haulerID kernel.UUID) ([]*load.Load, error) {
	if err := haulerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&dtos, "assigned_to = ?", haulerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(ctx, dtos)
}

// GetAllReserving retrieves all loads holding reserved capacity.
func (r *GormLoadRepository) GetAllReserving(ctx context.Context) ([]*load.Load, error) {
	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ?", []int{int(load.StatusAssigned), int(load.StatusInTransit)}).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(ctx, dtos)
}

// FindAvailable retrieves posted loads matching the filter, newest first.
//
// The radius clause is applied in two steps: a bounding box in SQL to prune
// the candidate set, then the exact great-circle distance in memory. The
// page limit applies after the exact check so near-boundary loads cannot
// push matching ones off the page.
func (r *GormLoadRepository) FindAvailable(ctx context.Context, filter ports.AvailableLoadsFilter) ([]*load.Load, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", int(load.StatusPosted)).
		Where("weight <= ?", filter.MaxWeight).
		Where("vehicle_type_required = ?", filter.VehicleType)

	if filter.PartialOnly {
		query = query.Where("mode = ?", int(load.ModePartial))
	}

	if filter.Origin != nil {
		minLat, maxLat, minLng, maxLng := boundingBox(*filter.Origin, filter.RadiusKm)
		query = query.
			Where("origin_lat IS NOT NULL AND origin_lng IS NOT NULL").
			Where("origin_lat BETWEEN ? AND ?", minLat, maxLat).
			Where("origin_lng BETWEEN ? AND ?", minLng, maxLng)
	}

	if filter.Limit > 0 {
		sqlLimit := filter.Limit
		if filter.Origin != nil {
			// The bounding box over-approximates the radius circle and the
			// exact distance cut happens in memory, so fetch extra candidate
			// rows to keep the page full after the cut.
			sqlLimit *= candidateFactor
		}
		query = query.Limit(sqlLimit)
	}

	var dtos []LoadDTO
	if err := query.Order("created_at desc").Find(&dtos).Error; err != nil {
		return nil, err
	}

	loads, err := r.toDomainList(ctx, dtos)
	if err != nil {
		return nil, err
	}

	if filter.Origin != nil {
		loads, err = filterByDistance(loads, *filter.Origin, filter.RadiusKm)
		if err != nil {
			return nil, err
		}
	}
	if filter.Limit > 0 && len(loads) > filter.Limit {
		loads = loads[:filter.Limit]
	}

	return loads, nil
}

// toDomainList maps DTOs to aggregates, loading all history rows in one
// batch query.
func (r *GormLoadRepository) toDomainList(ctx context.Context, dtos []LoadDTO) ([]*load.Load, error) {
	if len(dtos) == 0 {
		return []*load.Load{}, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	var historyDTOs []HistoryDTO
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&historyDTOs, "load_id IN ?", ids).Error; err != nil {
		return nil, err
	}

	historyByLoad := make(map[uuid.UUID][]HistoryDTO, len(dtos))
	for _, row := range historyDTOs {
		historyByLoad[row.LoadID] = append(historyByLoad[row.LoadID], row)
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto, historyByLoad[dto.ID])
		if err != nil {
			return nil, err
		}
		loads = append(loads, aggregate)
	}

	return loads, nil
}

// boundingBox returns the latitude/longitude envelope of a circle around
// origin. One degree of latitude spans about 111 km; longitude degrees
// shrink with the cosine of the latitude.
func boundingBox(origin kernel.GeoPoint, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := radiusKm / 111.0

	lngDelta := 180.0
	if cosLat := math.Cos(origin.Lat() * math.Pi / 180.0); cosLat > 0 {
		lngDelta = radiusKm / (111.0 * cosLat)
	}

	return origin.Lat() - latDelta, origin.Lat() + latDelta,
		origin.Lng() - lngDelta, origin.Lng() + lngDelta
}

func filterByDistance(loads []*load.Load, origin kernel.GeoPoint, radiusKm float64) ([]*load.Load, error) {
	matched := make([]*load.Load, 0, len(loads))
	for _, aggregate := range loads {
		point := aggregate.Details().OriginPoint
		if point == nil {
			continue
		}

		distance, err := origin.DistanceKm(*point)
		if err != nil {
			return nil, err
		}
		if distance <= radiusKm {
			matched = append(matched, aggregate)
		}
	}

	return matched, nil
}
