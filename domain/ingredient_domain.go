package domain

import (
	"errors"
)

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessSaveIngredient   = "ingredient saved successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageFailedGetIngredients    = "failed to get ingredients"
	MessageFailedSaveIngredient    = "failed to save ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"
	MessageIngredientNotFound      = "ingredient not found"
	MessageUsageAlreadyExists      = "ingredient is already linked to this recipe"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrUsageNotFound      = errors.New("ingredient is not used by this recipe")
	ErrUsageAlreadyExists = errors.New("ingredient is already linked to this recipe")
)

type (
	SaveIngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Category string  `json:"category"`
		Price    float64 `json:"price" validate:"omitempty,min=0"`
	}

	IngredientResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
	}

	SaveUsageRequest struct {
		Amount string `json:"amount" validate:"required"`
	}

	RecipeUsageResponse struct {
		RecipeID       string `json:"recipe_id"`
		RecipeName     string `json:"recipe_name"`
		IngredientID   string `json:"ingredient_id"`
		IngredientName string `json:"ingredient_name"`
		Amount         string `json:"amount"`
	}
)
