package queries

import (
	"database/sql"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// scanLoadSummaries maps rows of the shared listing projection to read
// models. The column order must match the SELECT lists of the listing
// queries.
func scanLoadSummaries(rows *sql.Rows) ([]LoadSummary, error) {
	summaries := make([]LoadSummary, 0)

	for rows.Next() {
		var summary LoadSummary
		var id uuid.UUID
		var assignedTo *uuid.UUID
		var mode, status int
		var pickupDate, createdAt time.Time

		err := rows.Scan(
			&id,
			&summary.Origin,
			&summary.Destination,
			&summary.CargoType,
			&summary.Weight,
			&summary.Price,
			&summary.VehicleTypeRequired,
			&mode,
			&status,
			&assignedTo,
			&pickupDate,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = loadID

		if assignedTo != nil {
			haulerID, haulerErr := kernel.UUIDFromBytes(assignedTo[:])
			if haulerErr != nil {
				return nil, haulerErr
			}
			summary.AssignedTo = &haulerID
		}

		summary.Mode = load.Mode(mode)
		summary.Status = load.Status(status)
		summary.PickupDate = pickupDate
		summary.CreatedAt = createdAt

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
