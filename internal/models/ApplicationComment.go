package models

import "gorm.io/gorm"

// ApplicationComment is a staff note on an application. No route serves
// these yet; the table exists for the admin review workflow.
type ApplicationComment struct {
	gorm.Model
	ApplicationID uint   `json:"application_id" gorm:"index"`
	StaffID       uint   `json:"staff_id"`
	Body          string `json:"body"`
}
