package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/recipe"
)

// RecipeRepository defines the persistence contract for recipe aggregates.
type RecipeRepository interface {
	// Add persists a new recipe.
	Add(ctx context.Context, aggregate *recipe.Recipe) error

	// Get retrieves a recipe by its unique identifier.
	// Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error)
}
