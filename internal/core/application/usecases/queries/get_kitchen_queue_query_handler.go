package queries

import (
	"context"
	"database/sql"
	"sort"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenQueueQueryHandler retrieves the active kitchen queue from the database.
// Filters out completed and cancelled orders and sorts the remainder the way
// the kitchen works through them: status weight first, then priority, then age.
//
// Example:
//
//	handler := NewGetKitchenQueueQueryHandler(db)
//	query := NewGetKitchenQueueQuery()
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get kitchen queue: %v", err)
//	    return err
//	}
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection for query execution.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Sorting happens in memory because the status weight used for ordering is
// domain knowledge, not a column.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]GetKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetKitchenQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.priority,
			o.station_id,
			o.created_at,
			COUNT(i.id)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.status, o.priority, o.station_id, o.created_at
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetKitchenQueueQueryResponse
		var id uuid.UUID
		var stationID sql.Null[uuid.UUID]

		err = rows.Scan(
			&id,
			&entry.Status,
			&entry.Priority,
			&stationID,
			&entry.CreatedAt,
			&entry.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID

		if stationID.Valid {
			sid, sidErr := kernel.UUIDFromBytes(stationID.V[:])
			if sidErr != nil {
				return nil, sidErr
			}
			entry.StationID = &sid
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Status.SortOrder() != entries[j].Status.SortOrder() {
			return entries[i].Status.SortOrder() > entries[j].Status.SortOrder()
		}
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority.IsHigherThan(entries[j].Priority)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}
