package recipe

import (
	"context"
	"errors"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, restaurantID string) (*domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, req domain.SaveRecipeRequest, id, restaurantID string) (*domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id, restaurantID string) error
		GetRecipe(ctx context.Context, id, restaurantID string) (*domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, restaurantID string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, restaurantID string) (*domain.CreateRecipeResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		RestaurantID: restaurantUUID,
		Name:         req.Name,
		Category:     req.Category,
		Station:      req.Station,
		Instructions: req.Instructions,
		Yield:        req.Yield,
		Version:      1,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, req.Ingredients); err != nil {
		return nil, err
	}

	return &domain.CreateRecipeResponse{ID: recipe.ID.String()}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, req domain.SaveRecipeRequest, id, restaurantID string) (*domain.RecipeDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	current, err := s.recipeRepository.GetRecipeByID(ctx, id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	// A zero request version opts out of the optimistic check and keeps the
	// legacy last-write-wins behavior.
	expectedVersion := current.Version
	if req.Version != 0 {
		if req.Version != current.Version {
			return nil, domain.ErrRecipeVersionConflict
		}
		expectedVersion = req.Version
	}

	recipe := &entities.Recipe{
		ID:           current.ID,
		RestaurantID: current.RestaurantID,
		Name:         req.Name,
		Category:     req.Category,
		Station:      req.Station,
		Instructions: req.Instructions,
		Yield:        req.Yield,
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, req.Ingredients, expectedVersion); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The row existed a moment ago, so zero rows affected means a
			// concurrent writer bumped the version first.
			return nil, domain.ErrRecipeVersionConflict
		}
		return nil, err
	}

	return s.GetRecipe(ctx, id, restaurantID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id, restaurantID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.recipeRepository.DeleteRecipe(ctx, id, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// GetRecipe rejects malformed ids before the query; a bad path parameter is
// a 400 instead of a driver error on the uuid column.
func (s *recipeService) GetRecipe(ctx context.Context, id, restaurantID string) (*domain.RecipeDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	lines, err := s.recipeRepository.GetRecipeIngredients(ctx, recipe.ID.String())
	if err != nil {
		return nil, err
	}

	ingredients := make([]string, 0, len(lines))
	for _, line := range lines {
		ingredients = append(ingredients, line.Description)
	}

	return &domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Ingredients:    ingredients,
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, restaurantID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toRecipeResponse(r))
	}
	return result, nil
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:           r.ID.String(),
		RestaurantID: r.RestaurantID.String(),
		Name:         r.Name,
		Category:     r.Category,
		Station:      r.Station,
		Instructions: r.Instructions,
		Yield:        r.Yield,
		Version:      r.Version,
		CreatedAt:    r.CreatedAt,
	}
}
