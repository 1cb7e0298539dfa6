package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemSpec is one requested order line: a recipe reference with a
// quantity and optional per-item note. Recipes are resolved by the handler.
type OrderItemSpec struct {
	RecipeID kernel.UUID
	Quantity int
	Note     string
}

// CreateOrderCommand represents a request to accept a new kitchen order.
// Encapsulates the guest reference, requested items, and initial priority.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, &tableID,
//	    []OrderItemSpec{{RecipeID: burgerID, Quantity: 2}},
//	    order.Medium, "no onions",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	tableID             *kernel.UUID
	items               []OrderItemSpec
	priority            order.Priority
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a new kitchen order.
// Validates ids, requires a non-empty item list with positive quantities,
// and requires a priority within range. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	tableID *kernel.UUID,
	items []OrderItemSpec,
	priority order.Priority,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setTableID(tableID),
		cmd.setItems(items),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the guest placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TableID returns the table reference, or nil for takeaway orders.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

// Priority returns the requested initial priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// SpecialInstructions returns the order-level guest requests. May be empty.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tableId", err)
	}

	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.RecipeID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("quantity %d for recipe %s is not greater than 0", item.Quantity, item.RecipeID))
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
