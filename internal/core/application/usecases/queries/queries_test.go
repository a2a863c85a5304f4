package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMyLoadsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetMyLoadsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetMyLoadsQuery_EmptyBusinessID(t *testing.T) {
	_, err := queries.NewGetMyLoadsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "businessID")
}

func TestGetMyLoadsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetMyLoadsQuery{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMyLoadsQueryIsNotConstructed)
}

func TestNewGetMyJobsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetMyJobsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetMyJobsQuery_EmptyHaulerID(t *testing.T) {
	_, err := queries.NewGetMyJobsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "haulerID")
}

func TestGetMyJobsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetMyJobsQuery{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMyJobsQueryIsNotConstructed)
}

func TestNewGetLoadDetailsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLoadDetailsQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetLoadDetailsQuery_EmptyIdentifiers(t *testing.T) {
	_, err := queries.NewGetLoadDetailsQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorContains(t, err, "loadID")

	_, err = queries.NewGetLoadDetailsQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "requesterID")
}

func TestGetLoadDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetLoadDetailsQuery{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLoadDetailsQueryIsNotConstructed)
}

func TestNewGetAvailableLoadsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAvailableLoadsQuery(kernel.NewUUID(), 50, 10)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.InDelta(t, 50, query.RadiusKm(), 1e-9)
	assert.Equal(t, 10, query.Limit())
}

func TestNewGetAvailableLoadsQuery_EmptyHaulerID(t *testing.T) {
	_, err := queries.NewGetAvailableLoadsQuery(kernel.UUID{}, 0, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "haulerID")
}

func TestGetAvailableLoadsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetAvailableLoadsQuery{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableLoadsQueryIsNotConstructed)
}
