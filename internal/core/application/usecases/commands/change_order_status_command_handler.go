package commands

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
// Parses the requested status, validates the transition against the order's
// state machine, stamps the milestone timestamp the first time a status is
// reached, and persists the change.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, "preparing", "")
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrBusinessRuleViolation) {
//	    // Transition not allowed from the order's current status
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the order, applies the transition through the domain state machine
// (cancellations also record the reason), and persists the updated order.
// Returns the updated order on success.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	target, err := order.StatusFromString(cmd.Status())
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

	now := time.Now().UTC()
	if target == order.Cancelled {
		err = existing.Cancel(cmd.Reason(), now)
	} else {
		err = existing.ChangeStatus(target, now)
	}
	if err != nil {
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
