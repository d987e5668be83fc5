package main

import (
	"github.com/bradymcatee/recipeBox/cmd/config"
	migration "github.com/bradymcatee/recipeBox/cmd/database/migrate"
	"github.com/bradymcatee/recipeBox/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("app setup failed: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "9000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
