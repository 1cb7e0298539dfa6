package order_test

import (
	"fmt"
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/recipe"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItems(t *testing.T) []*order.Item {
	t.Helper()

	burger, err := recipe.NewRecipe(kernel.NewUUID(), "Smash Burger", 10*time.Minute, 8*time.Minute)
	require.NoError(t, err)
	fries, err := recipe.NewRecipe(kernel.NewUUID(), "Fries", 2*time.Minute, 5*time.Minute)
	require.NoError(t, err)

	burgerItem, err := order.NewItem(kernel.NewUUID(), burger, 2, "no onions")
	require.NoError(t, err)
	friesItem, err := order.NewItem(kernel.NewUUID(), fries, 1, "")
	require.NoError(t, err)

	return []*order.Item{burgerItem, friesItem}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		newTestItems(t),
		order.Medium,
		"",
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	createdAt := time.Now().UTC()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		tableID := kernel.NewUUID()
		items := newTestItems(t)

		o, err := order.NewOrder(validID, customerID, &tableID, items, order.High, "table 12", createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, &tableID, o.TableID())
		assert.Nil(t, o.StationID())
		assert.Equal(t, items, o.Items())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.High, o.Priority())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, "table 12", o.SpecialInstructions())
		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.ReadyAt())
		assert.Nil(t, o.CompletedAt())
		assert.Empty(t, o.CancellationReason())
	})

	t.Run("should create takeaway order without a table", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, nil, newTestItems(t), order.Medium, "", createdAt)

		require.NoError(t, err)
		assert.Nil(t, o.TableID())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, customerID, nil, newTestItems(t), order.Medium, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with invalid customer", func(t *testing.T) {
		o, err := order.NewOrder(validID, kernel.UUID{}, nil, newTestItems(t), order.Medium, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, nil, nil, order.Medium, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with an unconstructed item", func(t *testing.T) {
		items := []*order.Item{{}}

		o, err := order.NewOrder(validID, customerID, nil, items, order.Medium, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should fail with out-of-range priority", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, nil, newTestItems(t), order.Priority(0), "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with zero creation time", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, nil, newTestItems(t), order.Medium, "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil, nil, order.Priority(0), "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "priority")
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full persisted state", func(t *testing.T) {
		stationID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		confirmedAt := createdAt.Add(2 * time.Minute)
		startedAt := createdAt.Add(5 * time.Minute)

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:          kernel.NewUUID(),
			CustomerID:  kernel.NewUUID(),
			StationID:   &stationID,
			Items:       newTestItems(t),
			Status:      order.Preparing,
			Priority:    order.Urgent,
			CreatedAt:   createdAt,
			ConfirmedAt: &confirmedAt,
			StartedAt:   &startedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.Urgent, o.Priority())
		assert.Equal(t, &stationID, o.StationID())
		assert.Equal(t, &confirmedAt, o.ConfirmedAt())
		assert.Equal(t, &startedAt, o.StartedAt())
		assert.Nil(t, o.ReadyAt())
	})

	t.Run("should restore a cancelled order with its reason", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:                 kernel.NewUUID(),
			CustomerID:         kernel.NewUUID(),
			Items:              newTestItems(t),
			Status:             order.Cancelled,
			Priority:           order.Low,
			CreatedAt:          time.Now().UTC(),
			CancellationReason: "kitchen closed",
		})

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "kitchen closed", o.CancellationReason())
	})

	t.Run("should reject an invalid persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         kernel.NewUUID(),
			CustomerID: kernel.NewUUID(),
			Items:      newTestItems(t),
			Status:     order.Unknown,
			Priority:   order.Low,
			CreatedAt:  time.Now().UTC(),
		})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TotalPreparationTime(t *testing.T) {
	t.Run("should sum item times weighted by quantity", func(t *testing.T) {
		o := newTestOrder(t)

		// burger 18m x2 + fries 7m x1
		assert.Equal(t, 43*time.Minute, o.TotalPreparationTime())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should walk the full lifecycle stamping milestones", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Confirmed, now))
		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, now, *o.ConfirmedAt())

		later := now.Add(5 * time.Minute)
		require.NoError(t, o.ChangeStatus(order.Preparing, later))
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, later, *o.StartedAt())

		require.NoError(t, o.ChangeStatus(order.Ready, later.Add(20*time.Minute)))
		require.NotNil(t, o.ReadyAt())
	})

	t.Run("should reject illegal transitions and leave the order untouched", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Ready, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "cannot transition from Pending to Ready")
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.ReadyAt())
	})

	t.Run("should never stamp a milestone twice", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:          kernel.NewUUID(),
			CustomerID:  kernel.NewUUID(),
			Items:       newTestItems(t),
			Status:      order.Pending,
			Priority:    order.Medium,
			CreatedAt:   now.Add(-time.Hour),
			ConfirmedAt: &now,
		})
		require.NoError(t, err)

		// re-entering Confirmed must keep the original stamp
		require.NoError(t, o.ChangeStatus(order.Confirmed, now.Add(time.Hour)))
		assert.Equal(t, now, *o.ConfirmedAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should cancel from every non-terminal status", func(t *testing.T) {
		paths := map[string][]order.Status{
			"Pending":   {},
			"Confirmed": {order.Confirmed},
			"Preparing": {order.Confirmed, order.Preparing},
			"Ready":     {order.Confirmed, order.Preparing, order.Ready},
		}

		for name, path := range paths {
			t.Run(fmt.Sprintf("from %s", name), func(t *testing.T) {
				o := newTestOrder(t)
				for _, status := range path {
					require.NoError(t, o.ChangeStatus(status, now))
				}

				require.NoError(t, o.Cancel("guest left", now))
				assert.Equal(t, order.Cancelled, o.Status())
				assert.Equal(t, "guest left", o.CancellationReason())
			})
		}
	})

	t.Run("should reject cancelling a completed order", func(t *testing.T) {
		o := newTestOrder(t)
		for _, status := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
			require.NoError(t, o.ChangeStatus(status, now))
		}
		for _, item := range o.Items() {
			require.NoError(t, item.ChangeStatus(order.ItemReady))
		}
		require.NoError(t, o.Complete(now))

		err := o.Cancel("too late", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Empty(t, o.CancellationReason())
	})

	t.Run("should reject cancelling twice", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel("first", now))

		err := o.Cancel("second", now)

		require.Error(t, err)
		assert.Equal(t, "first", o.CancellationReason())
	})
}

func TestOrder_Complete(t *testing.T) {
	now := time.Now().UTC()

	readyOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := newTestOrder(t)
		for _, status := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
			require.NoError(t, o.ChangeStatus(status, now))
		}
		return o
	}

	t.Run("should complete when every item is ready", func(t *testing.T) {
		o := readyOrder(t)
		for _, item := range o.Items() {
			require.NoError(t, item.ChangeStatus(order.ItemReady))
		}

		require.NoError(t, o.Complete(now))
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
	})

	t.Run("should accept delivered items as ready to serve", func(t *testing.T) {
		o := readyOrder(t)
		for _, item := range o.Items() {
			require.NoError(t, item.ChangeStatus(order.ItemDelivered))
		}

		require.NoError(t, o.Complete(now))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should reject completion while an item is unfinished", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.Items()[0].ChangeStatus(order.ItemReady))
		// second item stays pending

		err := o.Complete(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "not ready to serve")
		assert.Contains(t, err.Error(), o.Items()[1].Recipe().Name())
		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("should reject completion before the order is ready", func(t *testing.T) {
		o := newTestOrder(t)
		for _, item := range o.Items() {
			require.NoError(t, item.ChangeStatus(order.ItemReady))
		}

		err := o.Complete(now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition from Pending to Completed")
	})
}

func TestOrder_AssignStation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should assign a station to a pending order", func(t *testing.T) {
		o := newTestOrder(t)
		stationID := kernel.NewUUID()

		require.NoError(t, o.AssignStation(stationID))
		require.NotNil(t, o.StationID())
		assert.True(t, o.StationID().IsEqual(stationID))
	})

	t.Run("should allow reassignment while still confirmed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, now))
		require.NoError(t, o.AssignStation(kernel.NewUUID()))

		second := kernel.NewUUID()
		require.NoError(t, o.AssignStation(second))
		assert.True(t, o.StationID().IsEqual(second))
	})

	t.Run("should reject assignment once preparation has started", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, now))
		require.NoError(t, o.ChangeStatus(order.Preparing, now))

		err := o.AssignStation(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "Preparing is not a valid status to assign a station")
		assert.Nil(t, o.StationID())
	})

	t.Run("should reject an invalid station id", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignStation(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrder_ChangeItemStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should advance the matching item", func(t *testing.T) {
		o := newTestOrder(t)
		itemID := o.Items()[0].ID()

		require.NoError(t, o.ChangeItemStatus(itemID, order.ItemPreparing))
		assert.Equal(t, order.ItemPreparing, o.Items()[0].Status())
		assert.Equal(t, order.ItemPending, o.Items()[1].Status())
	})

	t.Run("should fail when no item matches", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeItemStatus(kernel.NewUUID(), order.ItemPreparing)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail on a terminal order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel("", now))

		err := o.ChangeItemStatus(o.Items()[0].ID(), order.ItemPreparing)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestOrder_Escalation(t *testing.T) {
	newAgedOrder := func(t *testing.T, priority order.Priority, age time.Duration) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			nil,
			newTestItems(t),
			priority,
			"",
			time.Now().UTC().Add(-age),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("should escalate one level at a time", func(t *testing.T) {
		o := newTestOrder(t)

		o.EscalatePriority()
		assert.Equal(t, order.High, o.Priority())

		o.EscalatePriority()
		assert.Equal(t, order.Urgent, o.Priority())
	})

	t.Run("should saturate at Critical", func(t *testing.T) {
		o := newAgedOrder(t, order.Critical, 0)

		o.EscalatePriority()
		assert.Equal(t, order.Critical, o.Priority())
	})

	t.Run("should need escalation after the priority timeout", func(t *testing.T) {
		now := time.Now().UTC()

		testCases := []struct {
			priority order.Priority
			age      time.Duration
			expected bool
		}{
			{order.Low, 59 * time.Minute, false},
			{order.Low, 61 * time.Minute, true},
			{order.Medium, 29 * time.Minute, false},
			{order.Medium, 31 * time.Minute, true},
			{order.High, 16 * time.Minute, true},
			{order.Urgent, 6 * time.Minute, true},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s after %s", tc.priority, tc.age), func(t *testing.T) {
				o := newAgedOrder(t, tc.priority, tc.age)
				assert.Equal(t, tc.expected, o.NeedsEscalation(now))
			})
		}
	})

	t.Run("should never escalate Critical orders", func(t *testing.T) {
		o := newAgedOrder(t, order.Critical, 24*time.Hour)
		assert.False(t, o.NeedsEscalation(time.Now().UTC()))
	})

	t.Run("should never escalate terminal orders", func(t *testing.T) {
		o := newAgedOrder(t, order.Low, 24*time.Hour)
		require.NoError(t, o.Cancel("", time.Now().UTC()))

		assert.False(t, o.NeedsEscalation(time.Now().UTC()))
	})
}
