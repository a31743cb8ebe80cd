package model

import (
	"time"
)

type Restaurant struct {
	ID           uint      `gorm:"primarykey" json:"id"`                   // restaurant ID
	Name         string    `gorm:"not null;index" json:"name"`             // name
	Address      string    `gorm:"not null" json:"address"`                // street address
	Phone        *string   `gorm:"uniqueIndex" json:"phone,omitempty"`     // optional, unique when set
	Cuisine      string    `gorm:"type:varchar(50);index" json:"cuisine"`  // cuisine tag
	Rating       float64   `gorm:"not null;default:0" json:"rating"`       // average rating, maintained by admins
	OpeningHours string    `gorm:"type:varchar(100)" json:"opening_hours"` // free text
	ImageURL     string    `json:"image_url,omitempty"`                    // presigned-upload result
	IsActive     bool      `gorm:"not null;index" json:"is_active"`        // hidden from default search
	CreatedAt    time.Time `json:"created_at"`                             // created at
	UpdatedAt    time.Time `json:"updated_at"`                             // updated at

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"menu_items,omitempty"` // menu
}

func (Restaurant) TableName() string {
	return "restaurants"
}
