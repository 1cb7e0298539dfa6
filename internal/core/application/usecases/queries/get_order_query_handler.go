package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order and its items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no order
// exists with the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			table_id,
			station_id,
			status,
			priority,
			created_at,
			confirmed_at,
			started_at,
			ready_at,
			completed_at,
			special_instructions,
			cancellation_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id, customerID uuid.UUID
	var tableID, stationID sql.Null[uuid.UUID]
	var specialInstructions, cancellationReason sql.NullString

	err := row.Scan(
		&id,
		&customerID,
		&tableID,
		&stationID,
		&resp.Status,
		&resp.Priority,
		&resp.CreatedAt,
		&resp.ConfirmedAt,
		&resp.StartedAt,
		&resp.ReadyAt,
		&resp.CompletedAt,
		&specialInstructions,
		&cancellationReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if tableID.Valid {
		tid, tidErr := kernel.UUIDFromBytes(tableID.V[:])
		if tidErr != nil {
			return GetOrderQueryResponse{}, tidErr
		}
		resp.TableID = &tid
	}
	if stationID.Valid {
		sid, sidErr := kernel.UUIDFromBytes(stationID.V[:])
		if sidErr != nil {
			return GetOrderQueryResponse{}, sidErr
		}
		resp.StationID = &sid
	}
	resp.SpecialInstructions = specialInstructions.String
	resp.CancellationReason = cancellationReason.String

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryItemResponse, error) {
	items := make([]GetOrderQueryItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			recipe_id,
			recipe_name,
			quantity,
			status,
			note
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItemResponse
		var id, recipeID uuid.UUID
		var note sql.NullString

		err = rows.Scan(
			&id,
			&recipeID,
			&item.RecipeName,
			&item.Quantity,
			&item.Status,
			&note,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.RecipeID, err = kernel.UUIDFromBytes(recipeID[:]); err != nil {
			return nil, err
		}
		item.Note = note.String

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
