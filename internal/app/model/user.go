package model

import (
	"time"
)

type UserRole string // closed set: customer, admin

const (
	RoleCustomer UserRole = "customer" // default role on registration
	RoleAdmin    UserRole = "admin"    // catalog and order administration
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// IsAdmin is the single admin gate. Unknown roles are never admin.
func (r UserRole) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return false
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                     // user ID
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`                        // login email
	PasswordHash string    `gorm:"not null" json:"-"`                                        // bcrypt hash, never serialised
	Name         string    `gorm:"not null" json:"name"`                                     // display name
	Phone        *string   `gorm:"uniqueIndex" json:"phone,omitempty"`                       // optional, unique when set
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'customer'" json:"role"` // access role
	IsActive     bool      `gorm:"not null" json:"is_active"`                                // inactive users cannot log in
	CreatedAt    time.Time `json:"created_at"`                                               // created at
	UpdatedAt    time.Time `json:"updated_at"`                                               // updated at
}

func (User) TableName() string {
	return "users"
}
