package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrChangeItemStatusCommandIsNotConstructed = errors.New(
	"ChangeItemStatusCommand must be created via NewChangeItemStatusCommand constructor",
)

// ChangeItemStatusCommand represents a request to advance one item of an
// order through its preparation stages. Like the order-level status change,
// the target arrives as a string from the transport layer and is validated
// up front, so an unknown item status fails before any store access.
type ChangeItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	status  string

	guard guard.ConstructorGuard
}

// NewChangeItemStatusCommand creates a command to change an item's status.
// Validates that both identifiers are valid and the status string is parseable.
func NewChangeItemStatusCommand(orderID kernel.UUID, itemID kernel.UUID, status string) (ChangeItemStatusCommand, error) {
	cmd := ChangeItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemStatusCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c ChangeItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item to change.
func (c ChangeItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the requested target item status string.
func (c ChangeItemStatusCommand) Status() string {
	return c.status
}

func (c *ChangeItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemStatusCommand) setStatus(status string) error {
	if _, err := order.ItemStatusFromString(status); err != nil {
		return err
	}

	c.status = status
	return nil
}
