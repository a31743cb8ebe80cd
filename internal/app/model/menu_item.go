package model

import (
	"time"
)

type MenuItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`                   // menu item ID
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`    // owning restaurant
	Name         string    `gorm:"not null" json:"name"`                   // dish name
	Description  string    `gorm:"type:text" json:"description,omitempty"` // optional description
	Price        float64   `gorm:"not null" json:"price"`                  // current price, > 0
	IsAvailable  bool      `gorm:"not null" json:"is_available"`           // orderable right now
	Category     string    `gorm:"type:varchar(50);index" json:"category"` // category tag
	ImageURL     string    `json:"image_url,omitempty"`                    // presigned-upload result
	CreatedAt    time.Time `json:"created_at"`                             // created at
	UpdatedAt    time.Time `json:"updated_at"`                             // updated at
}

func (MenuItem) TableName() string {
	return "menu_items"
}
