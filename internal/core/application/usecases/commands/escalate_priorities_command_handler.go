package commands

import (
	"context"
	"time"
)

// EscalatePrioritiesCommandHandler raises the priority of orders that have
// waited at their current priority past the escalation timeout. Each
// priority level has a fixed timeout that shrinks as the level rises;
// Critical orders are never escalated further.
//
// The sweep runs in a single transaction so a partial failure escalates
// nothing.
type EscalatePrioritiesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEscalatePrioritiesCommandHandler creates a handler for escalation sweeps.
func NewEscalatePrioritiesCommandHandler(uowFactory OrderUoWFactory) EscalatePrioritiesCommandHandler {
	return EscalatePrioritiesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the escalation sweep. Loads all active orders, escalates
// the overdue ones, and persists each change. Returns the number of orders
// escalated.
func (h EscalatePrioritiesCommandHandler) Handle(ctx context.Context, cmd EscalatePrioritiesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	activeOrders, err := orderRepo.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	escalated := 0
	for _, o := range activeOrders {
		if !o.NeedsEscalation(now) {
			continue
		}

		o.EscalatePriority()
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		escalated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return escalated, nil
}
