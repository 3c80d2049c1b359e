package models

import "gorm.io/gorm"

// Alias is an alternate identifier (nickname, bank memo name, external
// id) used to match incoming records to a driver. The (type, value)
// pair is unique across the whole system, not per driver.
type Alias struct {
	gorm.Model
	DriverID   uint   `json:"driver_id" gorm:"index"`
	AliasType  string `json:"alias_type" gorm:"uniqueIndex:idx_alias_type_value"`
	AliasValue string `json:"alias_value" gorm:"uniqueIndex:idx_alias_type_value"`
}
