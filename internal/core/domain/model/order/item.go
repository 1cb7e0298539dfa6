package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/recipe"
	"kitchen/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemStatus tracks the progress of a single line item, mirroring a subset of
// the order lifecycle. Items advance strictly forward:
//
//	ItemPending ──> ItemPreparing ──> ItemReady ──> ItemDelivered
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending means work on the item has not started.
	ItemPending

	// ItemPreparing means the item is on a station being made.
	ItemPreparing

	// ItemReady means the item is finished and plated.
	ItemReady

	// ItemDelivered means the item has reached the guest.
	ItemDelivered
)

// getItemStatusStrings returns a map of valid ItemStatus values to display names.
func getItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPending:   "Pending",
		ItemPreparing: "Preparing",
		ItemReady:     "Ready",
		ItemDelivered: "Delivered",
	}
}

// ItemStatusFromString parses an item status case-insensitively.
// Empty or unrecognized strings fail; parsing never defaults.
func ItemStatusFromString(s string) (ItemStatus, error) {
	if s == "" {
		return ItemStatusUnknown, errs.NewValueIsRequiredError("item status")
	}

	for status, name := range getItemStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}

	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("item status",
		fmt.Errorf("%q is not a known item status", s))
}

// Validate checks that the item status is one of the defined values.
func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the display name of the item status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsReadyToServe reports whether the item no longer blocks order completion.
func (s ItemStatus) IsReadyToServe() bool {
	return s == ItemReady || s == ItemDelivered
}

// Item is a single line of an order: a recipe snapshot with a quantity and its
// own preparation progress. The recipe is copied by value at order creation so
// the item is immune to later menu changes.
type Item struct {
	id       kernel.UUID
	recipe   *recipe.Recipe
	quantity int
	status   ItemStatus
	note     string

	isConstructed bool
}

// NewItem creates an order line item in ItemPending status.
//
// The recipe must be a valid constructed Recipe and quantity must be positive.
// The note carries per-item special instructions and may be empty.
func NewItem(id kernel.UUID, r *recipe.Recipe, quantity int, note string) (*Item, error) {
	item := &Item{
		status:        ItemPending,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRecipe(r),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its status.
func RestoreItem(id kernel.UUID, r *recipe.Recipe, quantity int, status ItemStatus, note string) (*Item, error) {
	item, err := NewItem(id, r, quantity, note)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	item.status = status

	return item, nil
}

// Validate ensures the Item was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Recipe returns the snapshot of the recipe the item was ordered against.
func (i *Item) Recipe() *recipe.Recipe {
	return i.recipe
}

// Quantity returns how many servings the item covers.
func (i *Item) Quantity() int {
	return i.quantity
}

// Status returns the item's current preparation status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// Note returns the per-item special instructions. May be empty.
func (i *Item) Note() string {
	return i.note
}

// PreparationTime returns the total time to produce the item:
// the recipe's full time multiplied by the quantity.
func (i *Item) PreparationTime() time.Duration {
	return i.recipe.TotalTime() * time.Duration(i.quantity)
}

// ChangeStatus advances the item to target. Items only move forward; any
// attempt to move back or skip validation fails with a business rule error.
func (i *Item) ChangeStatus(target ItemStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target <= i.status {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"item status only moves forward",
			fmt.Errorf("cannot move item from %s to %s", i.status, target),
		)
	}

	i.status = target
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setRecipe(r *recipe.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	i.recipe = r
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
