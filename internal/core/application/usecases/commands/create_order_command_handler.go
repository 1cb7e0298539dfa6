package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for accepting a new
// kitchen order: recipe resolution, capacity admission, complexity check,
// and persistence of the new Pending order.
//
// All checks run before the single write; a rejected order leaves no trace
// in the store. The load counts feeding admission are read inside the same
// transaction as the write, but two concurrent admissions can still both
// pass on the same snapshot; closing that race needs a reservation at the
// store level.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	policy     services.CapacityPolicy
}

// NewCreateOrderCommandHandler creates a handler for order admission.
// Requires a CreateOrderUoWFactory for transactional persistence and the
// kitchen's capacity policy.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	policy services.CapacityPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order creation command.
//
// Steps:
//  1. Resolve each requested recipe; a missing recipe fails with a
//     validation error naming the recipe id.
//  2. Build the order items, each snapshotting its resolved recipe.
//  3. Reject if the summed preparation time exceeds the complexity ceiling.
//  4. Count active orders and on-shift kitchen staff and run capacity
//     admission.
//  5. Construct the order in Pending status and persist it.
//
// Returns the created order on success.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	items, err := h.resolveItems(ctx, uow, cmd.Items())
	if err != nil {
		return nil, err
	}

	var totalPreparationTime time.Duration
	for _, item := range items {
		totalPreparationTime += item.PreparationTime()
	}
	if err = h.policy.CheckComplexity(totalPreparationTime); err != nil {
		return nil, err
	}

	activeOrders, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	kitchenStaff, err := uow.StaffRepository().GetAllActiveKitchenStaff(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.policy.AdmitOrder(len(activeOrders), len(kitchenStaff)); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.TableID(),
		items,
		cmd.Priority(),
		cmd.SpecialInstructions(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveItems looks up every requested recipe and builds the order lines.
func (h CreateOrderCommandHandler) resolveItems(
	ctx context.Context,
	uow CreateOrderUoW,
	specs []OrderItemSpec,
) ([]*order.Item, error) {
	recipeRepo := uow.RecipeRepository()

	items := make([]*order.Item, 0, len(specs))
	for _, spec := range specs {
		r, err := recipeRepo.Get(ctx, spec.RecipeID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("recipe %s does not exist", spec.RecipeID))
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), r, spec.Quantity, spec.Note)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
