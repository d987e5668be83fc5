package ingredient

import (
	"context"

	"github.com/bradymcatee/recipeBox/entities"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, id string) error

		// Recipe usage relations
		AddUsage(ctx context.Context, usage *entities.IngredientUsage) error
		UsageExists(ctx context.Context, recipeID, ingredientID string) (bool, error)
		UpdateUsageAmount(ctx context.Context, recipeID, ingredientID, amount string) error
		DeleteUsage(ctx context.Context, recipeID, ingredientID string) error
		GetUsagesByRecipe(ctx context.Context, recipeID string) ([]*entities.IngredientUsage, error)
		GetUsagesByIngredient(ctx context.Context, ingredientID, restaurantID string) ([]*entities.IngredientUsage, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ingredientRepository) AddUsage(ctx context.Context, usage *entities.IngredientUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *ingredientRepository) UsageExists(ctx context.Context, recipeID, ingredientID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.IngredientUsage{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Count(&count).Error
	return count > 0, err
}

func (r *ingredientRepository) UpdateUsageAmount(ctx context.Context, recipeID, ingredientID, amount string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.IngredientUsage{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Update("amount", amount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ingredientRepository) DeleteUsage(ctx context.Context, recipeID, ingredientID string) error {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.IngredientUsage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ingredientRepository) GetUsagesByRecipe(ctx context.Context, recipeID string) ([]*entities.IngredientUsage, error) {
	var usages []*entities.IngredientUsage
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Recipe").
		Where("recipe_id = ?", recipeID).
		Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

// GetUsagesByIngredient joins through recipes so only the caller's
// restaurant's usages are visible.
func (r *ingredientRepository) GetUsagesByIngredient(ctx context.Context, ingredientID, restaurantID string) ([]*entities.IngredientUsage, error) {
	var usages []*entities.IngredientUsage
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Recipe").
		Joins("JOIN recipes ON recipes.id = ingredient_usages.recipe_id").
		Where("ingredient_usages.ingredient_id = ? AND recipes.restaurant_id = ?", ingredientID, restaurantID).
		Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}
