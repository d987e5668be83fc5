package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	Users   []*User   `gorm:"foreignKey:RestaurantID" json:"-"`
	Recipes []*Recipe `gorm:"foreignKey:RestaurantID" json:"-"`
	Timestamp
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
