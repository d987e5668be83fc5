package ingredient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/entities"
	"github.com/bradymcatee/recipeBox/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Restaurant{}, &entities.Recipe{}, &entities.RecipeIngredient{},
		&entities.Ingredient{}, &entities.IngredientUsage{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupService(t *testing.T) (IngredientService, recipe.RecipeService, *entities.Restaurant) {
	t.Helper()
	db := setupTestDB(t)

	r := &entities.Restaurant{Name: "Test Bistro"}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	recipeRepository := recipe.NewRecipeRepository(db)
	svc := NewIngredientService(NewIngredientRepository(db), recipeRepository)
	return svc, recipe.NewRecipeService(recipeRepository), r
}

func seedRecipe(t *testing.T, recipes recipe.RecipeService, restaurantID, name string) string {
	t.Helper()
	created, err := recipes.CreateRecipe(context.Background(), domain.SaveRecipeRequest{Name: name}, restaurantID)
	if err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return created.ID
}

func TestIngredientCRUD(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.AddIngredient(ctx, domain.SaveIngredientRequest{
		Name:     "San Marzano Tomatoes",
		Category: "produce",
		Price:    4.50,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.GetIngredient(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "San Marzano Tomatoes" || got.Price != 4.50 {
		t.Fatalf("unexpected ingredient %+v", got)
	}

	updated, err := svc.UpdateIngredient(ctx, domain.SaveIngredientRequest{
		Name:     "San Marzano Tomatoes",
		Category: "produce",
		Price:    5.25,
	}, created.ID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 5.25 {
		t.Fatalf("price not updated: %+v", updated)
	}

	if err := svc.DeleteIngredient(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetIngredient(ctx, created.ID); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
}

func TestIngredientNotFound(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()
	missing := uuid.New().String()

	if _, err := svc.GetIngredient(ctx, missing); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("get: expected ErrIngredientNotFound, got %v", err)
	}
	if _, err := svc.UpdateIngredient(ctx, domain.SaveIngredientRequest{Name: "x"}, missing); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("update: expected ErrIngredientNotFound, got %v", err)
	}
	if err := svc.DeleteIngredient(ctx, missing); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("delete: expected ErrIngredientNotFound, got %v", err)
	}
}

func TestUsageLifecycle(t *testing.T) {
	svc, recipes, r := setupService(t)
	ctx := context.Background()
	restaurantID := r.ID.String()

	recipeID := seedRecipe(t, recipes, restaurantID, "Marinara")
	ing, err := svc.AddIngredient(ctx, domain.SaveIngredientRequest{Name: "Garlic", Category: "produce"})
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}

	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "3 cloves"}, recipeID, ing.ID, restaurantID); err != nil {
		t.Fatalf("add usage: %v", err)
	}
	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "4 cloves"}, recipeID, ing.ID, restaurantID); !errors.Is(err, domain.ErrUsageAlreadyExists) {
		t.Fatalf("duplicate usage: expected ErrUsageAlreadyExists, got %v", err)
	}

	usages, err := svc.GetRecipeUsages(ctx, recipeID, restaurantID)
	if err != nil {
		t.Fatalf("get recipe usages: %v", err)
	}
	if len(usages) != 1 || usages[0].Amount != "3 cloves" || usages[0].IngredientName != "Garlic" {
		t.Fatalf("unexpected usages %+v", usages)
	}

	if err := svc.UpdateUsage(ctx, domain.SaveUsageRequest{Amount: "5 cloves"}, recipeID, ing.ID); err != nil {
		t.Fatalf("update usage: %v", err)
	}
	usages, err = svc.GetRecipeUsages(ctx, recipeID, restaurantID)
	if err != nil {
		t.Fatalf("get recipe usages: %v", err)
	}
	if usages[0].Amount != "5 cloves" {
		t.Fatalf("amount not updated: %+v", usages[0])
	}

	byIngredient, err := svc.GetIngredientUsages(ctx, ing.ID, restaurantID)
	if err != nil {
		t.Fatalf("get ingredient usages: %v", err)
	}
	if len(byIngredient) != 1 || byIngredient[0].RecipeName != "Marinara" {
		t.Fatalf("unexpected reverse usages %+v", byIngredient)
	}

	if err := svc.DeleteUsage(ctx, recipeID, ing.ID); err != nil {
		t.Fatalf("delete usage: %v", err)
	}
	usages, err = svc.GetRecipeUsages(ctx, recipeID, restaurantID)
	if err != nil {
		t.Fatalf("get recipe usages: %v", err)
	}
	if len(usages) != 0 {
		t.Fatalf("usage not deleted: %+v", usages)
	}
}

func TestUsageErrors(t *testing.T) {
	svc, recipes, r := setupService(t)
	ctx := context.Background()
	restaurantID := r.ID.String()

	recipeID := seedRecipe(t, recipes, restaurantID, "Aioli")
	ing, err := svc.AddIngredient(ctx, domain.SaveIngredientRequest{Name: "Lemon"})
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}

	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "1"}, uuid.New().String(), ing.ID, restaurantID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("missing recipe: expected ErrRecipeNotFound, got %v", err)
	}
	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "1"}, recipeID, uuid.New().String(), restaurantID); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("missing ingredient: expected ErrIngredientNotFound, got %v", err)
	}

	if err := svc.UpdateUsage(ctx, domain.SaveUsageRequest{Amount: "2"}, recipeID, ing.ID); !errors.Is(err, domain.ErrUsageNotFound) {
		t.Fatalf("update absent usage: expected ErrUsageNotFound, got %v", err)
	}
	if err := svc.DeleteUsage(ctx, recipeID, ing.ID); !errors.Is(err, domain.ErrUsageNotFound) {
		t.Fatalf("delete absent usage: expected ErrUsageNotFound, got %v", err)
	}
}

func TestUsageRecipeIsTenantScoped(t *testing.T) {
	svc, recipes, r := setupService(t)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, r.ID.String(), "House Dressing")
	ing, err := svc.AddIngredient(ctx, domain.SaveIngredientRequest{Name: "Olive Oil"})
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}

	otherRestaurant := uuid.New().String()
	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "1 cup"}, recipeID, ing.ID, otherRestaurant); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for foreign tenant, got %v", err)
	}
	if _, err := svc.GetRecipeUsages(ctx, recipeID, otherRestaurant); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for foreign tenant, got %v", err)
	}
}

func TestIngredientUsagesHideForeignRecipes(t *testing.T) {
	svc, recipes, r := setupService(t)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, r.ID.String(), "Secret Paella")
	ing, err := svc.AddIngredient(ctx, domain.SaveIngredientRequest{Name: "Saffron"})
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "1 pinch"}, recipeID, ing.ID, r.ID.String()); err != nil {
		t.Fatalf("add usage: %v", err)
	}

	// the catalog is shared, but another restaurant must not see which
	// recipes use an ingredient
	foreign, err := svc.GetIngredientUsages(ctx, ing.ID, uuid.New().String())
	if err != nil {
		t.Fatalf("get usages as foreign tenant: %v", err)
	}
	if len(foreign) != 0 {
		t.Fatalf("foreign tenant sees %d usages: %+v", len(foreign), foreign)
	}

	own, err := svc.GetIngredientUsages(ctx, ing.ID, r.ID.String())
	if err != nil {
		t.Fatalf("get usages as owner: %v", err)
	}
	if len(own) != 1 || own[0].RecipeName != "Secret Paella" {
		t.Fatalf("owner usages wrong: %+v", own)
	}
}

func TestMalformedIDsAreRejected(t *testing.T) {
	svc, _, r := setupService(t)
	ctx := context.Background()

	if _, err := svc.GetIngredient(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("get: expected ErrParseUUID, got %v", err)
	}
	if err := svc.DeleteIngredient(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("delete: expected ErrParseUUID, got %v", err)
	}
	if err := svc.AddUsage(ctx, domain.SaveUsageRequest{Amount: "1"}, "not-a-uuid", uuid.New().String(), r.ID.String()); !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("add usage: expected ErrParseUUID, got %v", err)
	}
	if _, err := svc.GetIngredientUsages(ctx, "not-a-uuid", r.ID.String()); !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("get usages: expected ErrParseUUID, got %v", err)
	}
}
