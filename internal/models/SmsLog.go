package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SMS delivery outcomes.
const (
	SmsSent   = "sent"
	SmsFailed = "failed"
)

// SmsLog records every outbound SMS attempt, successful or not.
// Response holds whatever OpenPhone returned, verbatim.
type SmsLog struct {
	gorm.Model
	Phone    string         `json:"phone"`
	Message  string         `json:"message"`
	Status   string         `json:"status"` // "sent" or "failed"
	Response datatypes.JSON `json:"response"`
}
