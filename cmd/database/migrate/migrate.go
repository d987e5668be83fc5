package migration

import (
	"fmt"
	"log"

	"github.com/bradymcatee/recipeBox/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		log.Fatalf("Error migrating restaurant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}, &entities.IngredientUsage{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
