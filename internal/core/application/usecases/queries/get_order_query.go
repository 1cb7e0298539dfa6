package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being looked up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryItemResponse represents one line of an order.
type GetOrderQueryItemResponse struct {
	ID         kernel.UUID
	RecipeID   kernel.UUID
	RecipeName string
	Quantity   int
	Status     order.ItemStatus
	Note       string
}

// GetOrderQueryResponse represents the full detail of a single order.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	TableID             *kernel.UUID
	StationID           *kernel.UUID
	Status              order.Status
	Priority            order.Priority
	CreatedAt           time.Time
	ConfirmedAt         *time.Time
	StartedAt           *time.Time
	ReadyAt             *time.Time
	CompletedAt         *time.Time
	SpecialInstructions string
	CancellationReason  string
	Items               []GetOrderQueryItemResponse
}
