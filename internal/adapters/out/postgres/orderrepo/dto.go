// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/recipe"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and station assignment.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index"`
	TableID             *uuid.UUID `gorm:"type:uuid"`
	StationID           *uuid.UUID `gorm:"type:uuid;index"`
	Items               []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status              int        `gorm:"index"`
	Priority            int
	CreatedAt           time.Time
	ConfirmedAt         *time.Time
	StartedAt           *time.Time
	ReadyAt             *time.Time
	CompletedAt         *time.Time
	SpecialInstructions string
	CancellationReason  string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the database. The recipe is stored
// as a snapshot so a later recipe edit does not rewrite the history of
// orders already taken.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	RecipeID        uuid.UUID `gorm:"type:uuid"`
	RecipeName      string
	PrepTimeMinutes int64
	CookTimeMinutes int64
	Quantity        int
	Status          int
	Note            string
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional table and station assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var tableID *uuid.UUID
	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	var stationID *uuid.UUID
	if id := aggregate.StationID(); id != nil {
		raw := id.Bytes()
		stationID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		TableID:             tableID,
		StationID:           stationID,
		Items:               items,
		Status:              int(aggregate.Status()),
		Priority:            int(aggregate.Priority()),
		CreatedAt:           aggregate.CreatedAt(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		StartedAt:           aggregate.StartedAt(),
		ReadyAt:             aggregate.ReadyAt(),
		CompletedAt:         aggregate.CompletedAt(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		CancellationReason:  aggregate.CancellationReason(),
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	r := item.Recipe()
	return ItemDTO{
		ID:              item.ID().Bytes(),
		OrderID:         orderID.Bytes(),
		RecipeID:        r.ID().Bytes(),
		RecipeName:      r.Name(),
		PrepTimeMinutes: int64(r.PrepTime() / time.Minute),
		CookTimeMinutes: int64(r.CookTime() / time.Minute),
		Quantity:        item.Quantity(),
		Status:          int(item.Status()),
		Note:            item.Note(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, milestones, and
// station assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}

		tableID = &tID
	}

	var stationID *kernel.UUID
	if dto.StationID != nil {
		sID, stationErr := kernel.UUIDFromBytes((*dto.StationID)[:])
		if stationErr != nil {
			return nil, stationErr
		}

		stationID = &sID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                  id,
		CustomerID:          customerID,
		TableID:             tableID,
		StationID:           stationID,
		Items:               items,
		Status:              order.Status(dto.Status),
		Priority:            order.Priority(dto.Priority),
		CreatedAt:           dto.CreatedAt,
		ConfirmedAt:         dto.ConfirmedAt,
		StartedAt:           dto.StartedAt,
		ReadyAt:             dto.ReadyAt,
		CompletedAt:         dto.CompletedAt,
		SpecialInstructions: dto.SpecialInstructions,
		CancellationReason:  dto.CancellationReason,
	})
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipeID, err := kernel.UUIDFromBytes(dto.RecipeID[:])
	if err != nil {
		return nil, err
	}

	r, err := recipe.RestoreRecipe(
		recipeID,
		dto.RecipeName,
		time.Duration(dto.PrepTimeMinutes)*time.Minute,
		time.Duration(dto.CookTimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, r, dto.Quantity, order.ItemStatus(dto.Status), dto.Note)
}
