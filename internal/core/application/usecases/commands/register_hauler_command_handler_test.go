package commands_test

import (
	"context"
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterHaulerCommand_Validation(t *testing.T) {
	location, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewRegisterHaulerCommand(kernel.NewUUID(), "box_truck", 5000, location)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		_, err := commands.NewRegisterHaulerCommand(kernel.UUID{}, "box_truck", 5000, location)
		require.Error(t, err)
		assert.ErrorContains(t, err, "haulerID")

		_, err = commands.NewRegisterHaulerCommand(kernel.NewUUID(), "", 5000, location)
		require.Error(t, err)
		assert.ErrorContains(t, err, "vehicleType")

		_, err = commands.NewRegisterHaulerCommand(kernel.NewUUID(), "box_truck", 0, location)
		require.Error(t, err)
		assert.ErrorContains(t, err, "capacity")
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		err := commands.RegisterHaulerCommand{}.Validate()
		require.ErrorIs(t, err, commands.ErrRegisterHaulerCommandIsNotConstructed)
	})
}

func TestRegisterHaulerCommandHandler_Handle(t *testing.T) {
	t.Run("should persist new hauler with an empty vehicle", func(t *testing.T) {
		ctx := context.Background()
		haulerID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(52.5200, 13.4050)
		require.NoError(t, err)

		cmd, err := commands.NewRegisterHaulerCommand(haulerID, "box_truck", 5000, location)
		require.NoError(t, err)

		haulerRepo := new(MockHaulerRepository)
		uow := new(MockUoW)
		factory := new(MockHaulerUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("HaulerRepository").Return(haulerRepo)
		haulerRepo.On("Add", ctx, mock.AnythingOfType("*hauler.Hauler")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewRegisterHaulerCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		haulerRepo.AssertExpectations(t)
		uow.AssertExpectations(t)

		added := haulerRepo.Calls[0].Arguments[1].(*hauler.Hauler)
		assert.True(t, added.ID().IsEqual(haulerID))
		assert.Equal(t, "box_truck", added.VehicleType())
		assert.InDelta(t, 5000, added.TotalCapacity(), 1e-9)
		assert.InDelta(t, 5000, added.AvailableCapacity(), 1e-9)
	})

	t.Run("should roll back when add fails", func(t *testing.T) {
		ctx := context.Background()
		location, err := kernel.NewGeoPoint(52.5200, 13.4050)
		require.NoError(t, err)

		cmd, err := commands.NewRegisterHaulerCommand(kernel.NewUUID(), "box_truck", 5000, location)
		require.NoError(t, err)

		haulerRepo := new(MockHaulerRepository)
		uow := new(MockUoW)
		factory := new(MockHaulerUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("HaulerRepository").Return(haulerRepo)
		haulerRepo.On("Add", ctx, mock.AnythingOfType("*hauler.Hauler")).Return(errors.New("insert error")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewRegisterHaulerCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.EqualError(t, err, "insert error")
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
