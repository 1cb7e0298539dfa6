package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station aggregates.
type StationRepository interface {
	// Add persists a new station.
	Add(ctx context.Context, aggregate *station.Station) error

	// Get retrieves a station by its unique identifier.
	// Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)
}
