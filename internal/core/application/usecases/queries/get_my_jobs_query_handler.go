package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyJobsQueryHandler retrieves a hauler's jobs straight from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetMyJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyJobsQueryHandler creates a handler for the my-jobs listing.
// Requires a GORM database connection for query execution.
func NewGetMyJobsQueryHandler(db *gorm.DB) GetMyJobsQueryHandler {
	return GetMyJobsQueryHandler{db: db}
}

// Handle executes the query. Returns the loads assigned to the hauler in
// every status, newest first.
func (h GetMyJobsQueryHandler) Handle(
	ctx context.Context,
	query GetMyJobsQuery,
) ([]LoadSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			cargo_type,
			weight,
			price,
			vehicle_type_required,
			mode,
			status,
			assigned_to,
			pickup_date,
			created_at
		FROM loads
		WHERE assigned_to = ?
		ORDER BY created_at DESC
	`, query.HaulerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoadSummaries(rows)
}
