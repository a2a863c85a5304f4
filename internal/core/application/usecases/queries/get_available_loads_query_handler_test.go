package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLoadRepository struct{ mock.Mock }

func (m *mockLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockLoadRepository) Transition(ctx context.Context, aggregate *load.Load, expected load.Status) error {
	return m.Called(ctx, aggregate, expected).Error(0)
}

func (m *mockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *mockLoadRepository) GetAllByCreator(ctx context.Context, creatorID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *mockLoadRepository) GetAllByAssignee(ctx context.Context, haulerID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, haulerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *mockLoadRepository) GetAllReserving(ctx context.Context) ([]*load.Load, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *mockLoadRepository) FindAvailable(ctx context.Context, filter ports.AvailableLoadsFilter) ([]*load.Load, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

type mockHaulerRepository struct{ mock.Mock }

func (m *mockHaulerRepository) Add(ctx context.Context, aggregate *hauler.Hauler) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockHaulerRepository) Update(ctx context.Context, aggregate *hauler.Hauler) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockHaulerRepository) Get(ctx context.Context, id kernel.UUID) (*hauler.Hauler, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hauler.Hauler), args.Error(1)
}

func (m *mockHaulerRepository) GetAll(ctx context.Context) ([]*hauler.Hauler, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hauler.Hauler), args.Error(1)
}

func (m *mockHaulerRepository) GetAllForUpdate(ctx context.Context) ([]*hauler.Hauler, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hauler.Hauler), args.Error(1)
}

func (m *mockHaulerRepository) ReserveCapacity(ctx context.Context, id kernel.UUID, weight float64, mode load.Mode) error {
	return m.Called(ctx, id, weight, mode).Error(0)
}

func (m *mockHaulerRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID, weight float64) error {
	return m.Called(ctx, id, weight).Error(0)
}

func availableLoad(t *testing.T) *load.Load {
	t.Helper()

	origin, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)
	destination, err := kernel.NewGeoPoint(53.5511, 9.9937)
	require.NoError(t, err)

	l, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), load.Details{
		Origin:              "Berlin",
		Destination:         "Hamburg",
		OriginPoint:         &origin,
		DestinationPoint:    &destination,
		CargoType:           "pallets",
		Weight:              1200,
		Price:               850,
		VehicleTypeRequired: "box_truck",
		Mode:                load.ModePartial,
		PickupDate:          time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}, time.Now())
	require.NoError(t, err)
	return l
}

func TestGetAvailableLoadsQueryHandler_Handle(t *testing.T) {
	t.Run("should derive the filter from the hauler and return summaries", func(t *testing.T) {
		ctx := context.Background()
		haulerID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(52.5200, 13.4050)
		require.NoError(t, err)
		h, err := hauler.NewHauler(haulerID, "box_truck", 5000, location)
		require.NoError(t, err)

		board := availableLoad(t)

		loadRepo := new(mockLoadRepository)
		haulerRepo := new(mockHaulerRepository)
		haulerRepo.On("Get", ctx, haulerID).Return(h, nil).Once()
		loadRepo.On("FindAvailable", ctx, mock.MatchedBy(func(filter ports.AvailableLoadsFilter) bool {
			return filter.MaxWeight == 5000 &&
				filter.VehicleType == "box_truck" &&
				!filter.PartialOnly &&
				filter.Origin != nil &&
				filter.RadiusKm == services.DefaultRadiusKm &&
				filter.Limit == services.DefaultPageSize
		})).Return([]*load.Load{board}, nil).Once()

		query, err := queries.NewGetAvailableLoadsQuery(haulerID, 0, 0)
		require.NoError(t, err)

		handler := queries.NewGetAvailableLoadsQueryHandler(loadRepo, haulerRepo)
		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, result[0].ID.IsEqual(board.ID()))
		assert.Equal(t, "Berlin", result[0].Origin)
		assert.Equal(t, load.StatusPosted, result[0].Status)
		assert.False(t, result[0].CreatedAt.IsZero())
		loadRepo.AssertExpectations(t)
		haulerRepo.AssertExpectations(t)
	})

	t.Run("should restrict the board to partial loads when the vehicle is occupied", func(t *testing.T) {
		ctx := context.Background()
		haulerID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(52.5200, 13.4050)
		require.NoError(t, err)
		h, err := hauler.NewHauler(haulerID, "box_truck", 5000, location)
		require.NoError(t, err)
		require.NoError(t, h.Reserve(1000, load.ModePartial))

		loadRepo := new(mockLoadRepository)
		haulerRepo := new(mockHaulerRepository)
		haulerRepo.On("Get", ctx, haulerID).Return(h, nil).Once()
		loadRepo.On("FindAvailable", ctx, mock.MatchedBy(func(filter ports.AvailableLoadsFilter) bool {
			return filter.PartialOnly && filter.MaxWeight == 4000
		})).Return([]*load.Load{}, nil).Once()

		query, err := queries.NewGetAvailableLoadsQuery(haulerID, 0, 0)
		require.NoError(t, err)

		handler := queries.NewGetAvailableLoadsQueryHandler(loadRepo, haulerRepo)
		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, result)
		loadRepo.AssertExpectations(t)
	})

	t.Run("should honor radius and limit overrides", func(t *testing.T) {
		ctx := context.Background()
		haulerID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(52.5200, 13.4050)
		require.NoError(t, err)
		h, err := hauler.NewHauler(haulerID, "box_truck", 5000, location)
		require.NoError(t, err)

		loadRepo := new(mockLoadRepository)
		haulerRepo := new(mockHaulerRepository)
		haulerRepo.On("Get", ctx, haulerID).Return(h, nil).Once()
		loadRepo.On("FindAvailable", ctx, mock.MatchedBy(func(filter ports.AvailableLoadsFilter) bool {
			return filter.RadiusKm == 250 && filter.Limit == 5
		})).Return([]*load.Load{}, nil).Once()

		query, err := queries.NewGetAvailableLoadsQuery(haulerID, 250, 5)
		require.NoError(t, err)

		handler := queries.NewGetAvailableLoadsQueryHandler(loadRepo, haulerRepo)
		_, err = handler.Handle(ctx, query)

		require.NoError(t, err)
		loadRepo.AssertExpectations(t)
	})

	t.Run("should fail when the hauler profile does not exist", func(t *testing.T) {
		ctx := context.Background()
		haulerID := kernel.NewUUID()

		loadRepo := new(mockLoadRepository)
		haulerRepo := new(mockHaulerRepository)
		haulerRepo.On("Get", ctx, haulerID).Return(nil, assert.AnError).Once()

		query, err := queries.NewGetAvailableLoadsQuery(haulerID, 0, 0)
		require.NoError(t, err)

		handler := queries.NewGetAvailableLoadsQueryHandler(loadRepo, haulerRepo)
		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, assert.AnError)
		loadRepo.AssertNotCalled(t, "FindAvailable", mock.Anything, mock.Anything)
	})
}
