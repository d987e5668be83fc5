package ingredient

import (
	"context"
	"errors"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/entities"
	"github.com/bradymcatee/recipeBox/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.SaveIngredientRequest) (*domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id string) (*domain.IngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, req domain.SaveIngredientRequest, id string) (*domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error

		AddUsage(ctx context.Context, req domain.SaveUsageRequest, recipeID, ingredientID, restaurantID string) error
		UpdateUsage(ctx context.Context, req domain.SaveUsageRequest, recipeID, ingredientID string) error
		DeleteUsage(ctx context.Context, recipeID, ingredientID string) error
		GetRecipeUsages(ctx context.Context, recipeID, restaurantID string) ([]domain.RecipeUsageResponse, error)
		GetIngredientUsages(ctx context.Context, ingredientID, restaurantID string) ([]domain.RecipeUsageResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, recipeRepository recipe.RecipeRepository) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		recipeRepository:     recipeRepository,
	}
}

// parseIDs rejects malformed uuids before they reach the database, so a bad
// path parameter is a 400 instead of a driver error.
func parseIDs(ids ...string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return domain.ErrParseUUID
		}
	}
	return nil
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.SaveIngredientRequest) (*domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	res := toIngredientResponse(ingredient)
	return &res, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string) (*domain.IngredientResponse, error) {
	if err := parseIDs(id); err != nil {
		return nil, err
	}
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	res := toIngredientResponse(ingredient)
	return &res, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		result = append(result, toIngredientResponse(i))
	}
	return result, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, req domain.SaveIngredientRequest, id string) (*domain.IngredientResponse, error) {
	if err := parseIDs(id); err != nil {
		return nil, err
	}
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}

	ingredient.Name = req.Name
	ingredient.Category = req.Category
	ingredient.Price = req.Price

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	res := toIngredientResponse(ingredient)
	return &res, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if err := parseIDs(id); err != nil {
		return err
	}
	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}

// AddUsage links a catalog ingredient to one of the caller's recipes. The
// recipe lookup is tenant scoped so foreign recipes are indistinguishable
// from missing ones.
func (s *ingredientService) AddUsage(ctx context.Context, req domain.SaveUsageRequest, recipeID, ingredientID, restaurantID string) error {
	if err := parseIDs(recipeID, ingredientID); err != nil {
		return err
	}
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	exists, err := s.ingredientRepository.UsageExists(ctx, recipeID, ingredientID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUsageAlreadyExists
	}

	usage := &entities.IngredientUsage{
		RecipeID:     rec.ID,
		IngredientID: ing.ID,
		Amount:       req.Amount,
	}
	return s.ingredientRepository.AddUsage(ctx, usage)
}

func (s *ingredientService) UpdateUsage(ctx context.Context, req domain.SaveUsageRequest, recipeID, ingredientID string) error {
	if err := parseIDs(recipeID, ingredientID); err != nil {
		return err
	}
	if err := s.ingredientRepository.UpdateUsageAmount(ctx, recipeID, ingredientID, req.Amount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUsageNotFound
		}
		return err
	}
	return nil
}

func (s *ingredientService) DeleteUsage(ctx context.Context, recipeID, ingredientID string) error {
	if err := parseIDs(recipeID, ingredientID); err != nil {
		return err
	}
	if err := s.ingredientRepository.DeleteUsage(ctx, recipeID, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUsageNotFound
		}
		return err
	}
	return nil
}

func (s *ingredientService) GetRecipeUsages(ctx context.Context, recipeID, restaurantID string) ([]domain.RecipeUsageResponse, error) {
	if err := parseIDs(recipeID); err != nil {
		return nil, err
	}
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	usages, err := s.ingredientRepository.GetUsagesByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return toUsageResponses(usages), nil
}

// GetIngredientUsages lists recipes using an ingredient, restricted to the
// caller's restaurant. The catalog is shared; the usages are not.
func (s *ingredientService) GetIngredientUsages(ctx context.Context, ingredientID, restaurantID string) ([]domain.RecipeUsageResponse, error) {
	if err := parseIDs(ingredientID); err != nil {
		return nil, err
	}
	usages, err := s.ingredientRepository.GetUsagesByIngredient(ctx, ingredientID, restaurantID)
	if err != nil {
		return nil, err
	}
	return toUsageResponses(usages), nil
}

func toIngredientResponse(i *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:       i.ID.String(),
		Name:     i.Name,
		Category: i.Category,
		Price:    i.Price,
	}
}

func toUsageResponses(usages []*entities.IngredientUsage) []domain.RecipeUsageResponse {
	result := make([]domain.RecipeUsageResponse, 0, len(usages))
	for _, u := range usages {
		res := domain.RecipeUsageResponse{
			RecipeID:     u.RecipeID.String(),
			IngredientID: u.IngredientID.String(),
			Amount:       u.Amount,
		}
		if u.Recipe != nil {
			res.RecipeName = u.Recipe.Name
		}
		if u.Ingredient != nil {
			res.IngredientName = u.Ingredient.Name
		}
		result = append(result, res)
	}
	return result
}
