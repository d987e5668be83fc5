package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "Recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageRecipeNotFound        = "Recipe not found"

	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrRecipeVersionConflict = errors.New("recipe was modified by someone else")
)

type (
	SaveRecipeRequest struct {
		Name         string   `json:"name" validate:"required"`
		Category     string   `json:"category"`
		Station      string   `json:"station"`
		Instructions string   `json:"instructions"`
		Yield        string   `json:"yield"`
		Ingredients  []string `json:"ingredients"`
		// Version carries the optimistic lock for updates. Zero means the
		// caller opted out of the check.
		Version int `json:"version,omitempty"`
	}

	RecipeResponse struct {
		ID           string    `json:"id"`
		RestaurantID string    `json:"restaurant_id"`
		Name         string    `json:"name"`
		Category     string    `json:"category"`
		Station      string    `json:"station"`
		Instructions string    `json:"instructions"`
		Yield        string    `json:"yield"`
		Version      int       `json:"version"`
		CreatedAt    time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients []string `json:"ingredients"`
	}

	CreateRecipeResponse struct {
		ID string `json:"id"`
	}
)
