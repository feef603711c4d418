package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system. Accounts are never deleted, only deactivated.
type User struct {
	gorm.Model
	Email        string `gorm:"size:255;unique;not null"`
	Name         string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:'user';index"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsStaff      bool   `gorm:"not null;default:false"`
	PasswordHash string `gorm:"size:255;not null"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
