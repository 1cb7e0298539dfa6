package order

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a kitchen order. It is the aggregate root that manages the
// order lifecycle from creation through kitchen work to completion or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must contain at least one item
//   - Status transitions follow the Status state machine
//   - Milestone timestamps are stamped exactly once, when the corresponding
//     status is first reached, and never cleared
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The aggregate itself takes no locks;
// concurrent modification of the same order is resolved by the backing store.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the guest the order belongs to
	customerID kernel.UUID

	// tableID references the table, if the order is dine-in (nil otherwise)
	tableID *kernel.UUID

	// stationID references the assigned kitchen station (nil if unassigned)
	stationID *kernel.UUID

	// items are the order lines; never empty
	items []*Item

	// status represents the current state in the order lifecycle
	status Status

	// priority expresses how urgently the order must be worked
	priority Priority

	// createdAt is the instant the order was accepted
	createdAt time.Time

	// milestone timestamps, stamped once when the status is first reached
	confirmedAt *time.Time
	startedAt   *time.Time
	readyAt     *time.Time
	completedAt *time.Time

	// specialInstructions carries order-level guest requests; may be empty
	specialInstructions string

	// cancellationReason records why the order was cancelled; set by Cancel
	cancellationReason string

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is,
// together with RestoreOrder, the only way to create a valid Order.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the guest placing the order
//   - tableID: optional table reference for dine-in orders
//   - items: the order lines; must be non-empty and individually valid
//   - priority: initial urgency level
//   - specialInstructions: optional order-level guest requests
//   - createdAt: the creation instant, stamped by the caller
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tableID *kernel.UUID,
	items []*Item,
	priority Priority,
	specialInstructions string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:              Pending,
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTableID(tableID),
		o.setItems(items),
		o.setPriority(priority),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	TableID             *kernel.UUID
	StationID           *kernel.UUID
	Items               []*Item
	Status              Status
	Priority            Priority
	CreatedAt           time.Time
	ConfirmedAt         *time.Time
	StartedAt           *time.Time
	ReadyAt             *time.Time
	CompletedAt         *time.Time
	SpecialInstructions string
	CancellationReason  string
}

// RestoreOrder reconstructs an Order from persistence, bypassing the state
// machine but not the structural invariants. Used by repository adapters.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		params.ID,
		params.CustomerID,
		params.TableID,
		params.Items,
		params.Priority,
		params.SpecialInstructions,
		params.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}

	if params.StationID != nil {
		if err = params.StationID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = params.Status
	o.stationID = params.StationID
	o.confirmedAt = params.ConfirmedAt
	o.startedAt = params.StartedAt
	o.readyAt = params.ReadyAt
	o.completedAt = params.CompletedAt
	o.cancellationReason = params.CancellationReason

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the guest the order belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TableID returns the table reference, or nil for takeaway orders.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// StationID returns the assigned station, or nil if unassigned.
func (o *Order) StationID() *kernel.UUID {
	return o.stationID
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the order's current priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// CreatedAt returns the instant the order was accepted.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order was first confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// StartedAt returns when preparation first began, or nil.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// ReadyAt returns when the order first became ready, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// SpecialInstructions returns the order-level guest requests. May be empty.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// CancellationReason returns why the order was cancelled. Empty unless cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// TotalPreparationTime returns the summed preparation time of all items:
// each item's recipe total time multiplied by its quantity.
func (o *Order) TotalPreparationTime() time.Duration {
	var total time.Duration
	for _, item := range o.items {
		total += item.PreparationTime()
	}
	return total
}

// ChangeStatus moves the order to target through the status state machine,
// stamping the matching milestone timestamp the first time that status is
// reached. Illegal transitions fail with a business rule error and leave the
// order untouched.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampMilestone(newStatus, now)
	return nil
}

// Cancel moves the order to Cancelled and records the reason.
// Allowed from every non-terminal status; the reason may be empty.
func (o *Order) Cancel(reason string, now time.Time) error {
	if err := o.ChangeStatus(Cancelled, now); err != nil {
		return err
	}

	o.cancellationReason = reason
	return nil
}

// Complete moves the order to Completed. Beyond the state machine rules,
// completion requires every item to be ready or delivered; an order with
// unfinished items fails with a business rule error naming the item.
func (o *Order) Complete(now time.Time) error {
	for _, item := range o.items {
		if !item.Status().IsReadyToServe() {
			return errs.NewBusinessRuleViolationErrorWithCause(
				"order has items that are not ready to serve",
				fmt.Errorf("item %s (%s) is still %s", item.ID(), item.Recipe().Name(), item.Status()),
			)
		}
	}

	return o.ChangeStatus(Completed, now)
}

// AssignStation assigns the order to a kitchen station.
//
// The order must still be routable: only Pending and Confirmed orders may be
// assigned. Reassignment while in those statuses is allowed.
func (o *Order) AssignStation(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	if o.status != Pending && o.status != Confirmed {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"order can no longer be routed to a station",
			fmt.Errorf("%s is not a valid status to assign a station", o.status),
		)
	}

	o.stationID = &stationID
	return nil
}

// ChangeItemStatus advances the status of the item with the given id.
// Returns an ObjectNotFoundError if no item matches, and fails on terminal
// orders, which can no longer change.
func (o *Order) ChangeItemStatus(itemID kernel.UUID, target ItemStatus) error {
	if o.status.IsTerminal() {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"items of a closed order cannot change",
			fmt.Errorf("order is %s", o.status),
		)
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item.ChangeStatus(target)
		}
	}

	return errs.NewObjectNotFoundError("item", itemID.String())
}

// EscalatePriority raises the order's priority one level, saturating at Critical.
func (o *Order) EscalatePriority() {
	o.priority = o.priority.Escalate()
}

// NeedsEscalation reports whether the order has waited at its current
// priority for longer than the priority's escalation timeout. Terminal orders
// and orders already at Critical never need escalation.
func (o *Order) NeedsEscalation(now time.Time) bool {
	if !o.status.IsActive() || o.priority >= Critical {
		return false
	}
	return now.Sub(o.createdAt) >= o.priority.EscalationTimeout()
}

// stampMilestone records the first time the order enters a milestone status.
// Timestamps are never overwritten or cleared.
func (o *Order) stampMilestone(status Status, now time.Time) {
	switch status {
	case Confirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &now
		}
	case Preparing:
		if o.startedAt == nil {
			o.startedAt = &now
		}
	case Ready:
		if o.readyAt == nil {
			o.readyAt = &now
		}
	case Completed:
		if o.completedAt == nil {
			o.completedAt = &now
		}
	case Unknown, Pending, Cancelled:
		// no milestone
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tableId", err)
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
