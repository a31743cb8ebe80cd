package model

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is unique per (user, restaurant).
type Review struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                                        // review ID
	UserID       uint      `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant" json:"user_id"`             // author
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant;index" json:"restaurant_id"` // reviewed restaurant
	Rating       int       `gorm:"not null" json:"rating"`                                                      // 1-5
	Comment      *string   `gorm:"type:text" json:"comment,omitempty"`                                          // optional text
	CreatedAt    time.Time `json:"created_at"`                                                                  // created at
	UpdatedAt    time.Time `json:"updated_at"`                                                                  // updated at
}

func (Review) TableName() string {
	return "reviews"
}
