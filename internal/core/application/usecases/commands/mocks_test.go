package commands_test

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadRepository) Transition(ctx context.Context, aggregate *load.Load, expected load.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetAllByCreator(ctx context.Context, creatorID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetAllByAssignee(ctx context.Context, haulerID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, haulerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetAllReserving(ctx context.Context) ([]*load.Load, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) FindAvailable(ctx context.Context, filter ports.AvailableLoadsFilter) ([]*load.Load, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

type MockHaulerRepository struct{ mock.Mock }

func (m *MockHaulerRepository) Add(ctx context.Context, aggregate *hauler.Hauler) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockHaulerRepository) Update(ctx context.Context, aggregate *hauler.Hauler) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockHaulerRepository) Get(ctx context.Context, id kernel.UUID) (*hauler.Hauler, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hauler.Hauler), args.Error(1)
}

func (m *MockHaulerRepository) GetAll(ctx context.Context) ([]*hauler.Hauler, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hauler.Hauler), args.Error(1)
}

func (m *MockHaulerRepository) GetAllForUpdate(ctx context.Context) ([]*hauler.Hauler, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hauler.Hauler), args.Error(1)
}

func (m *MockHaulerRepository) ReserveCapacity(ctx context.Context, id kernel.UUID, weight float64, mode load.Mode) error {
	args := m.Called(ctx, id, weight, mode)
	return args.Error(0)
}

func (m *MockHaulerRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID, weight float64) error {
	args := m.Called(ctx, id, weight)
	return args.Error(0)
}

// MockUoW satisfies the LoadUoW, HaulerUoW, and UoW interfaces so one mock
// serves every handler.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) HaulerRepository() ports.HaulerRepository {
	args := m.Called()
	return args.Get(0).(ports.HaulerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockHaulerUoWFactory struct{ mock.Mock }

func (m *MockHaulerUoWFactory) Create() commands.HaulerUoW {
	args := m.Called()
	return args.Get(0).(commands.HaulerUoW)
}
