package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application statuses. Intake always starts at pending; staff move the
// application through the rest from the admin panel.
const (
	ApplicationPending    = "pending"
	ApplicationApproved   = "approved"
	ApplicationHold       = "hold"
	ApplicationDeclined   = "declined"
	ApplicationOnboarding = "onboarding"
)

// Application is a job application received from the Fluent Forms
// webhook. FormData is the submitted payload stored verbatim; no field
// of it is validated or normalized here.
type Application struct {
	gorm.Model
	Status   string         `json:"status"`
	FormData datatypes.JSON `json:"form_data"`
	DriverID *uint          `json:"driver_id" gorm:"index"` // set once staff link it to a driver
}
