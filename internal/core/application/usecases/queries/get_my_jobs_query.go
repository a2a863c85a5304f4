package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetMyJobsQueryIsNotConstructed = errors.New(
		"GetMyJobsQuery must be created via NewGetMyJobsQuery constructor",
	)
)

// GetMyJobsQuery retrieves every load a hauler is or was working on:
// anything the hauler claimed that was not re-opened, newest first.
type GetMyJobsQuery struct {
	haulerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyJobsQuery creates a query for a hauler's jobs.
func NewGetMyJobsQuery(haulerID kernel.UUID) (GetMyJobsQuery, error) {
	if err := haulerID.Validate(); err != nil {
		return GetMyJobsQuery{}, errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	return GetMyJobsQuery{
		haulerID: haulerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyJobsQueryIsNotConstructed)
}

// HaulerID returns the requesting hauler's identifier.
func (q GetMyJobsQuery) HaulerID() kernel.UUID {
	return q.haulerID
}
