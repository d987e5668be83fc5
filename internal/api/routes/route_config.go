package routes

import (
	"github.com/bradymcatee/recipeBox/internal/api/handlers"
	"github.com/bradymcatee/recipeBox/internal/middleware"
	"github.com/bradymcatee/recipeBox/pkg/authz"
	"github.com/bradymcatee/recipeBox/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Recipes()
	c.Ingredients()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register-admin", c.UserHandler.RegisterAdmin)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/register",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RequireCapability(authz.CapManageUsers),
			c.UserHandler.Register,
		)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	users.Get("/me", c.UserHandler.Me)

	manage := users.Group("", c.Middleware.RequireCapability(authz.CapManageUsers))
	{
		manage.Get("", c.UserHandler.GetUsers)
		manage.Get("/:id", c.UserHandler.GetUser)
		manage.Post("", c.UserHandler.Register)
		manage.Put("/:id", c.UserHandler.UpdateUser)
		manage.Delete("/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/ingredients", c.IngredientHandler.GetRecipeUsages)

	recipes.Post("", c.Middleware.RequireCapability(authz.CapManageRecipes), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.RequireCapability(authz.CapManageRecipes), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.RequireCapability(authz.CapDeleteRecipes), c.RecipeHandler.DeleteRecipe)

	usages := recipes.Group("/:id/ingredients/:ingredientID", c.Middleware.RequireCapability(authz.CapManageRecipes))
	{
		usages.Post("", c.IngredientHandler.AddUsage)
		usages.Put("", c.IngredientHandler.UpdateUsage)
		usages.Delete("", c.IngredientHandler.DeleteUsage)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
	ingredients.Get("/:id/recipes", c.IngredientHandler.GetIngredientUsages)

	manage := ingredients.Group("", c.Middleware.RequireCapability(authz.CapManageRecipes))
	{
		manage.Post("", c.IngredientHandler.AddIngredient)
		manage.Put("/:id", c.IngredientHandler.UpdateIngredient)
		manage.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
