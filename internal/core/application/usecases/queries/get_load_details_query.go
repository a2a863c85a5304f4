package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetLoadDetailsQueryIsNotConstructed = errors.New(
		"GetLoadDetailsQuery must be created via NewGetLoadDetailsQuery constructor",
	)
)

// GetLoadDetailsQuery retrieves one load with its full transition history.
// Only the posting business and the assigned hauler may see the details.
type GetLoadDetailsQuery struct {
	loadID      kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadDetailsQuery creates a query for one load's details.
func NewGetLoadDetailsQuery(loadID, requesterID kernel.UUID) (GetLoadDetailsQuery, error) {
	query := GetLoadDetailsQuery{guard: guard.NewConstructorGuard()}

	if err := loadID.Validate(); err != nil {
		return GetLoadDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}
	if err := requesterID.Validate(); err != nil {
		return GetLoadDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("requesterID", err)
	}

	query.loadID = loadID
	query.requesterID = requesterID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadDetailsQueryIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (q GetLoadDetailsQuery) LoadID() kernel.UUID {
	return q.loadID
}

// RequesterID returns the requesting actor's identifier.
func (q GetLoadDetailsQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// HistoryEntryResponse is one transition in a load's audit trail.
type HistoryEntryResponse struct {
	Status    load.Status
	ActorID   kernel.UUID
	Timestamp time.Time
}

// GetLoadDetailsQueryResponse is the full read model for one load,
// including timestamps recorded along the lifecycle and the transition
// history in commit order.
type GetLoadDetailsQueryResponse struct {
	LoadSummary
	CreatedBy   kernel.UUID
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	History     []HistoryEntryResponse
}
