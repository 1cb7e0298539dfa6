package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
		"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
	)
)

// GetKitchenQueueQuery retrieves all active orders for kitchen display.
// Returns orders that are not completed or cancelled, arranged so the
// kitchen sees work in the order it should be tackled.
//
// Example:
//
//	query := NewGetKitchenQueueQuery()
//	handler := NewGetKitchenQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get kitchen queue: %w", err)
//	}
//
//	for _, entry := range queue {
//	    fmt.Printf("Order %s [%s] priority %s\n",
//	        entry.ID, entry.Status, entry.Priority)
//	}
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query to retrieve the active kitchen queue.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenQueueQueryIsNotConstructed if validation fails.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// GetKitchenQueueQueryResponse represents one entry on the kitchen queue.
type GetKitchenQueueQueryResponse struct {
	ID        kernel.UUID
	Status    order.Status
	Priority  order.Priority
	StationID *kernel.UUID
	ItemCount int
	CreatedAt time.Time
}
