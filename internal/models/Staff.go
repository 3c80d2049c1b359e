package models

import "gorm.io/gorm"

// Role values. The first staff member ever registered becomes admin;
// everyone after that is staff.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Staff struct {
	gorm.Model
	Email        string `json:"email" gorm:"unique"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"` // "admin" or "staff"
}
