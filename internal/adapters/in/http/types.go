package http

import (
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one order line in a create request.
type NewOrderItem struct {
	RecipeID string `json:"recipe_id"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	CustomerID          string         `json:"customer_id"`
	TableID             *string        `json:"table_id,omitempty"`
	Items               []NewOrderItem `json:"items"`
	Priority            int            `json:"priority"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
}

// ChangeStatus is the request body for POST /api/v1/orders/:id/status.
type ChangeStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ChangeItemStatus is the request body for POST /api/v1/orders/:id/items/:itemId/status.
type ChangeItemStatus struct {
	Status string `json:"status"`
}

// AssignStation is the request body for POST /api/v1/orders/:id/assign.
type AssignStation struct {
	StationID string `json:"station_id"`
}

// CancelOrder is the request body for POST /api/v1/orders/:id/cancel.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// OrderItem is one order line in an order response.
type OrderItem struct {
	ID         string `json:"id"`
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name,omitempty"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
}

// Order is the full order representation returned by the write endpoints
// and GET /api/v1/orders/:id.
type Order struct {
	ID                  string      `json:"id"`
	CustomerID          string      `json:"customer_id"`
	TableID             *string     `json:"table_id,omitempty"`
	StationID           *string     `json:"station_id,omitempty"`
	Items               []OrderItem `json:"items"`
	Status              string      `json:"status"`
	Priority            int         `json:"priority"`
	CreatedAt           time.Time   `json:"created_at"`
	ConfirmedAt         *time.Time  `json:"confirmed_at,omitempty"`
	StartedAt           *time.Time  `json:"started_at,omitempty"`
	ReadyAt             *time.Time  `json:"ready_at,omitempty"`
	CompletedAt         *time.Time  `json:"completed_at,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	CancellationReason  string      `json:"cancellation_reason,omitempty"`
}

// QueueEntry is one row of GET /api/v1/orders/queue.
type QueueEntry struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Priority  int       `json:"priority"`
	StationID *string   `json:"station_id,omitempty"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

func orderFromDomain(o *order.Order) Order {
	var tableID *string
	if id := o.TableID(); id != nil {
		s := id.String()
		tableID = &s
	}

	var stationID *string
	if id := o.StationID(); id != nil {
		s := id.String()
		stationID = &s
	}

	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ID:         item.ID().String(),
			RecipeID:   item.Recipe().ID().String(),
			RecipeName: item.Recipe().Name(),
			Quantity:   item.Quantity(),
			Status:     item.Status().String(),
			Note:       item.Note(),
		})
	}

	return Order{
		ID:                  o.ID().String(),
		CustomerID:          o.CustomerID().String(),
		TableID:             tableID,
		StationID:           stationID,
		Items:               items,
		Status:              o.Status().String(),
		Priority:            o.Priority().Level(),
		CreatedAt:           o.CreatedAt(),
		ConfirmedAt:         o.ConfirmedAt(),
		StartedAt:           o.StartedAt(),
		ReadyAt:             o.ReadyAt(),
		CompletedAt:         o.CompletedAt(),
		SpecialInstructions: o.SpecialInstructions(),
		CancellationReason:  o.CancellationReason(),
	}
}

func orderFromQueryResponse(resp queries.GetOrderQueryResponse) Order {
	var tableID *string
	if resp.TableID != nil {
		s := resp.TableID.String()
		tableID = &s
	}

	var stationID *string
	if resp.StationID != nil {
		s := resp.StationID.String()
		stationID = &s
	}

	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ID:         item.ID.String(),
			RecipeID:   item.RecipeID.String(),
			RecipeName: item.RecipeName,
			Quantity:   item.Quantity,
			Status:     item.Status.String(),
			Note:       item.Note,
		})
	}

	return Order{
		ID:                  resp.ID.String(),
		CustomerID:          resp.CustomerID.String(),
		TableID:             tableID,
		StationID:           stationID,
		Items:               items,
		Status:              resp.Status.String(),
		Priority:            resp.Priority.Level(),
		CreatedAt:           resp.CreatedAt,
		ConfirmedAt:         resp.ConfirmedAt,
		StartedAt:           resp.StartedAt,
		ReadyAt:             resp.ReadyAt,
		CompletedAt:         resp.CompletedAt,
		SpecialInstructions: resp.SpecialInstructions,
		CancellationReason:  resp.CancellationReason,
	}
}

func queueFromQueryResponse(entries []queries.GetKitchenQueueQueryResponse) []QueueEntry {
	result := make([]QueueEntry, 0, len(entries))
	for _, entry := range entries {
		var stationID *string
		if entry.StationID != nil {
			s := entry.StationID.String()
			stationID = &s
		}

		result = append(result, QueueEntry{
			ID:        entry.ID.String(),
			Status:    entry.Status.String(),
			Priority:  entry.Priority.Level(),
			StationID: stationID,
			ItemCount: entry.ItemCount,
			CreatedAt: entry.CreatedAt,
		})
	}

	return result
}
