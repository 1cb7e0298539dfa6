// Package reciperepo provides data transfer objects and mapping functions for recipe persistence.
package reciperepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/recipe"

	"github.com/google/uuid"
)

// RecipeDTO represents the database structure for persisting recipes.
type RecipeDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	PrepTimeMinutes int64
	CookTimeMinutes int64
}

// TableName specifies the database table name for recipes.
func (RecipeDTO) TableName() string {
	return "recipes"
}

func fromDomain(aggregate *recipe.Recipe) RecipeDTO {
	return RecipeDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		PrepTimeMinutes: int64(aggregate.PrepTime() / time.Minute),
		CookTimeMinutes: int64(aggregate.CookTime() / time.Minute),
	}
}

func toDomain(dto RecipeDTO) (*recipe.Recipe, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipe.RestoreRecipe(
		id,
		dto.Name,
		time.Duration(dto.PrepTimeMinutes)*time.Minute,
		time.Duration(dto.CookTimeMinutes)*time.Minute,
	)
}
