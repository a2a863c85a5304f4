package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/stretchr/testify/require"
)

func testDetails(t *testing.T) load.Details {
	t.Helper()

	return load.Details{
		Origin:              "Berlin",
		Destination:         "Hamburg",
		CargoType:           "pallets",
		Weight:              1200,
		Price:               850,
		VehicleTypeRequired: "box_truck",
		Mode:                load.ModePartial,
		PickupDate:          time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func testPostedLoad(t *testing.T, businessID kernel.UUID) *load.Load {
	t.Helper()

	l, err := load.NewLoad(kernel.NewUUID(), businessID, testDetails(t), time.Now())
	require.NoError(t, err)
	return l
}

func testMatchedLoad(t *testing.T, businessID, haulerID kernel.UUID) *load.Load {
	t.Helper()

	l := testPostedLoad(t, businessID)
	require.NoError(t, l.Claim(haulerID, time.Now()))
	return l
}

func testAssignedLoad(t *testing.T, businessID, haulerID kernel.UUID) *load.Load {
	t.Helper()

	l := testMatchedLoad(t, businessID, haulerID)
	require.NoError(t, l.Assign(time.Now()))
	return l
}

func testInTransitLoad(t *testing.T, businessID, haulerID kernel.UUID) *load.Load {
	t.Helper()

	l := testAssignedLoad(t, businessID, haulerID)
	require.NoError(t, l.PickUp(time.Now()))
	return l
}

func testHauler(t *testing.T, id kernel.UUID, capacity float64) *hauler.Hauler {
	t.Helper()

	location, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)

	h, err := hauler.NewHauler(id, "box_truck", capacity, location)
	require.NoError(t, err)
	return h
}
