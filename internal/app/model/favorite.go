package model

import (
	"time"
)

type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                                                    // favorite ID
	UserID       uint      `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"user_id"`       // user
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"restaurant_id"` // restaurant
	CreatedAt    time.Time `json:"created_at"`                                                              // created at

	// Associations (loaded with Preload)
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
