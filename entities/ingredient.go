package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a catalog entry, distinct from the free-text lines a recipe
// carries directly.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`

	Timestamp
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// IngredientUsage relates a recipe to a catalog ingredient with a quantity.
type IngredientUsage struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `gorm:"not null;index:idx_usage_recipe_ingredient,unique" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"not null;index:idx_usage_recipe_ingredient,unique" json:"ingredient_id"`
	Amount       string    `json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (u *IngredientUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
