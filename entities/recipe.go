package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID `gorm:"not null;index" json:"restaurant_id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `json:"category"` // Sauce, Entree, Dessert, Pasta, Grain, Vegetable
	Station      string    `json:"station"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	Yield        string    `json:"yield"`
	Version      int       `gorm:"not null;default:1" json:"version"`

	Restaurant  *Restaurant         `gorm:"foreignKey:RestaurantID" json:"-"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient is one ordered free-text line of a recipe. The set of
// lines for a recipe is always replaced as a unit, never diffed.
type RecipeIngredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"not null;index" json:"recipe_id"`
	Description string    `gorm:"not null" json:"description"`
	SortOrder   int       `gorm:"not null" json:"sort_order"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

func (r *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
