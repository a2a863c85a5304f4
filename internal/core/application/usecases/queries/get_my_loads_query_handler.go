package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyLoadsQueryHandler retrieves a business's loads straight from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetMyLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyLoadsQueryHandler creates a handler for the my-loads listing.
// Requires a GORM database connection for query execution.
func NewGetMyLoadsQueryHandler(db *gorm.DB) GetMyLoadsQueryHandler {
	return GetMyLoadsQueryHandler{db: db}
}

// Handle executes the query. Returns the business's loads in every status,
// newest first.
func (h GetMyLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetMyLoadsQuery,
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
		WHERE created_by = ?
		ORDER BY created_at DESC
	`, query.BusinessID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoadSummaries(rows)
}
