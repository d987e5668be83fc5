package recipe

import (
	"context"

	"github.com/bradymcatee/recipeBox/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, lines []string) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines []string, expectedVersion int) error
		DeleteRecipe(ctx context.Context, id, restaurantID string) error
		GetRecipeByID(ctx context.Context, id, restaurantID string) (*entities.Recipe, error)
		GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error)
		GetRecipes(ctx context.Context, restaurantID string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe inserts the recipe row and its ingredient lines in one
// transaction. Line sort order is the submitted array index.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, lines []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return insertIngredientLines(tx, recipe, lines)
	})
}

// UpdateRecipe updates the recipe row and fully replaces its ingredient
// lines in one transaction. The UPDATE is conditioned on id, restaurant and
// version; zero rows affected means the recipe is gone for this tenant or a
// concurrent writer already bumped the version, and nothing is written.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines []string, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Recipe{}).
			Where("id = ? AND restaurant_id = ? AND version = ?", recipe.ID, recipe.RestaurantID, expectedVersion).
			Updates(map[string]interface{}{
				"name":         recipe.Name,
				"category":     recipe.Category,
				"station":      recipe.Station,
				"instructions": recipe.Instructions,
				"yield":        recipe.Yield,
				"version":      gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return insertIngredientLines(tx, recipe, lines)
	})
}

// DeleteRecipe removes the recipe and its lines in one transaction. The
// recipe row is deleted first so a cross-tenant id never touches any line.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id, restaurantID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND restaurant_id = ?", id, restaurantID).Delete(&entities.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id, restaurantID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	var lines []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("sort_order asc").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, restaurantID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func insertIngredientLines(tx *gorm.DB, recipe *entities.Recipe, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]*entities.RecipeIngredient, 0, len(lines))
	for i, description := range lines {
		rows = append(rows, &entities.RecipeIngredient{
			RecipeID:    recipe.ID,
			Description: description,
			SortOrder:   i,
		})
	}
	return tx.Create(&rows).Error
}
