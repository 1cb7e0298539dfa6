// Package recipe contains the Recipe aggregate: the menu-side description of a
// dish with its preparation and cooking times. Orders snapshot recipes at
// creation time so later menu edits never change an order already in flight.
package recipe

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrRecipeIsNotConstructed is returned when a Recipe instance was not created through
// the NewRecipe or RestoreRecipe factory methods.
var ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")

// Recipe describes a dish the kitchen can prepare.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Preparation and cooking times must not be negative
//   - Combined time must be positive
type Recipe struct {
	id       kernel.UUID
	name     string
	prepTime time.Duration
	cookTime time.Duration

	isConstructed bool
}

// NewRecipe creates a Recipe with validation. This is the only way, together
// with RestoreRecipe, to obtain a valid Recipe.
func NewRecipe(id kernel.UUID, name string, prepTime, cookTime time.Duration) (*Recipe, error) {
	r := &Recipe{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setTimes(prepTime, cookTime),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipe reconstructs a Recipe from persistence.
// Applies the same validation rules as NewRecipe.
func RestoreRecipe(id kernel.UUID, name string, prepTime, cookTime time.Duration) (*Recipe, error) {
	return NewRecipe(id, name, prepTime, cookTime)
}

// Validate ensures the Recipe was properly constructed through a factory method.
func (r *Recipe) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipeIsNotConstructed
	}
	return nil
}

// IsEqual compares two recipes by their unique identifiers.
func (r *Recipe) IsEqual(other *Recipe) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipe's unique identifier.
func (r *Recipe) ID() kernel.UUID {
	return r.id
}

// Name returns the dish name.
func (r *Recipe) Name() string {
	return r.name
}

// PrepTime returns the hands-on preparation time.
func (r *Recipe) PrepTime() time.Duration {
	return r.prepTime
}

// CookTime returns the cooking time.
func (r *Recipe) CookTime() time.Duration {
	return r.cookTime
}

// TotalTime returns the full time to produce one serving of the dish.
func (r *Recipe) TotalTime() time.Duration {
	return r.prepTime + r.cookTime
}

func (r *Recipe) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipe) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipe) setTimes(prepTime, cookTime time.Duration) error {
	if prepTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepTime",
			fmt.Errorf("%s is negative", prepTime))
	}
	if cookTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cookTime",
			fmt.Errorf("%s is negative", cookTime))
	}
	if prepTime+cookTime <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalTime",
			fmt.Errorf("recipe total time must be positive"))
	}

	r.prepTime = prepTime
	r.cookTime = cookTime
	return nil
}
