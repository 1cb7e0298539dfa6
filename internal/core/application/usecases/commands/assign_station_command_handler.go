package commands

import (
	"context"
	"fmt"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
)

// AssignStationCommandHandler routes orders to kitchen stations.
// Only orders that have not entered preparation (Pending or Confirmed) can be
// routed; the station must exist, be in service, and pass the pluggable
// capability check before the assignment is persisted.
type AssignStationCommandHandler struct {
	uowFactory AssignStationUoWFactory
	capability services.StationCapability
}

// NewAssignStationCommandHandler creates a handler for station assignment.
// Requires an AssignStationUoWFactory and the station capability check to
// apply (use services.NewAllowAllCapability for the permissive default).
func NewAssignStationCommandHandler(
	uowFactory AssignStationUoWFactory,
	capability services.StationCapability,
) AssignStationCommandHandler {
	return AssignStationCommandHandler{
		uowFactory: uowFactory,
		capability: capability,
	}
}

// Handle processes the station assignment command.
// Loads the order and station, verifies the station is in service and capable
// of the order's recipes, and persists the assignment.
// Returns the updated order on success.
func (h AssignStationCommandHandler) Handle(ctx context.Context, cmd AssignStationCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	target, err := uow.StationRepository().Get(ctx, cmd.StationID())
	if err != nil {
		return nil, err
	}

	if !target.IsActive() {
		return nil, errs.NewBusinessRuleViolationErrorWithCause(
			"station is out of service",
			fmt.Errorf("station %s (%s) is not active", target.Name(), target.ID()),
		)
	}

	if err = h.capability.CanPrepare(target, existing); err != nil {
		return nil, err
	}

	if err = existing.AssignStation(target.ID()); err != nil {
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
