package reciperepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/recipe"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipeRepository implements RecipeRepository using GORM.
type GormRecipeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecipeRepository creates a new GORM recipe repository.
func NewGormRecipeRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipeRepository {
	return &GormRecipeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new recipe to the database.
func (r *GormRecipeRepository) Add(ctx context.Context, aggregate *recipe.Recipe) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a recipe by ID.
func (r *GormRecipeRepository) Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipe", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
