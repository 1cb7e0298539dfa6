package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// ChangeItemStatusCommandHandler advances one item of an order through its
// preparation stages. Kitchen stations report per-item progress this way;
// once every item is ready to serve the order itself can be completed.
//
// Example:
//
//	handler := NewChangeItemStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeItemStatusCommand(orderID, itemID, "ready")
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // No such order, or no such item on it
//	}
type ChangeItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeItemStatusCommandHandler creates a handler for item status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeItemStatusCommandHandler(uowFactory OrderUoWFactory) ChangeItemStatusCommandHandler {
	return ChangeItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item status change command.
// Loads the order, advances the matching item through the aggregate so the
// forward-only item rules and the terminal-order check apply, and persists
// the change. Returns the updated order on success.
func (h ChangeItemStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeItemStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	target, err := order.ItemStatusFromString(cmd.Status())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeItemStatus(cmd.ItemID(), target); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
