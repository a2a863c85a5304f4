package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadDetailsQueryHandler retrieves one load and its transition history
// from the database. Authorization is part of the read: actors that are
// neither the poster nor the assignee are refused before any data leaves
// the handler.
type GetLoadDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadDetailsQueryHandler creates a handler for load detail queries.
// Requires a GORM database connection for query execution.
func NewGetLoadDetailsQueryHandler(db *gorm.DB) GetLoadDetailsQueryHandler {
	return GetLoadDetailsQueryHandler{db: db}
}

// Handle executes the query. Returns the load with its history when the
// requester is the posting business or the assigned hauler, an
// ObjectNotFoundError when the load does not exist, and a
// NotAuthorizedError otherwise.
func (h GetLoadDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetLoadDetailsQuery,
) (GetLoadDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadDetailsQueryResponse{}, err
	}

	var response GetLoadDetailsQueryResponse
	var id, createdBy uuid.UUID
	var assignedTo *uuid.UUID
	var mode, status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_by,
			assigned_to,
			origin,
			destination,
			cargo_type,
			weight,
			price,
			vehicle_type_required,
			mode,
			status,
			pickup_date,
			picked_up_at,
			delivered_at,
			created_at
		FROM loads
		WHERE id = ?
	`, query.LoadID().Bytes()).Row()

	err := row.Scan(
		&id,
		&createdBy,
		&assignedTo,
		&response.Origin,
		&response.Destination,
		&response.CargoType,
		&response.Weight,
		&response.Price,
		&response.VehicleTypeRequired,
		&mode,
		&status,
		&response.PickupDate,
		&response.PickedUpAt,
		&response.DeliveredAt,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetLoadDetailsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"loadID", query.LoadID(), err)
		}
		return GetLoadDetailsQueryResponse{}, err
	}

	loadID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetLoadDetailsQueryResponse{}, err
	}
	creatorID, err := kernel.UUIDFromBytes(createdBy[:])
	if err != nil {
		return GetLoadDetailsQueryResponse{}, err
	}
	response.ID = loadID
	response.CreatedBy = creatorID

	if assignedTo != nil {
		haulerID, haulerErr := kernel.UUIDFromBytes(assignedTo[:])
		if haulerErr != nil {
			return GetLoadDetailsQueryResponse{}, haulerErr
		}
		response.AssignedTo = &haulerID
	}

	authorized := response.CreatedBy.IsEqual(query.RequesterID()) ||
		(response.AssignedTo != nil && response.AssignedTo.IsEqual(query.RequesterID()))
	if !authorized {
		return GetLoadDetailsQueryResponse{}, errs.NewNotAuthorizedError(
			query.RequesterID().String(), "view load details")
	}

	response.Mode = load.Mode(mode)
	response.Status = load.Status(status)

	history, err := h.loadHistory(ctx, query.LoadID())
	if err != nil {
		return GetLoadDetailsQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h GetLoadDetailsQueryHandler) loadHistory(
	ctx context.Context,
	loadID kernel.UUID,
) ([]HistoryEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			actor_id,
			timestamp
		FROM load_history
		WHERE load_id = ?
		ORDER BY id
	`, loadID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryEntryResponse, 0)

	for rows.Next() {
		var entry HistoryEntryResponse
		var status int
		var actorID uuid.UUID
		var timestamp time.Time

		if err = rows.Scan(&status, &actorID, &timestamp); err != nil {
			return nil, err
		}

		actor, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}

		entry.Status = load.Status(status)
		entry.ActorID = actor
		entry.Timestamp = timestamp
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
