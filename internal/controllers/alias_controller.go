package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gonzofleet/internal/config"
	"gonzofleet/internal/models"
)

type createAliasInput struct {
	AliasType  string `json:"alias_type" binding:"required"`
	AliasValue string `json:"alias_value" binding:"required"`
}

// ListAliases returns every alias belonging to a driver.
func ListAliases(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}

	var aliases []models.Alias
	if err := config.DB.Where("driver_id = ?", driver.ID).Find(&aliases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing aliases: " + err.Error()})
		return
	}

	result := make([]gin.H, 0, len(aliases))
	for _, alias := range aliases {
		result = append(result, prepareAliasResponse(alias))
	}
	c.JSON(http.StatusOK, result)
}

// CreateAlias adds an identity tag to a driver. The (type, value) pair
// must be unique across every driver in the system, not just this one;
// payment matching depends on an alias resolving to exactly one driver.
func CreateAlias(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}

	var input createAliasInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Alias
	err := config.DB.Where("alias_type = ? AND alias_value = ?", input.AliasType, input.AliasValue).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Alias already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	alias := models.Alias{
		DriverID:   driver.ID,
		AliasType:  input.AliasType,
		AliasValue: input.AliasValue,
	}
	if err := config.DB.Create(&alias).Error; err != nil {
		// The composite unique index backs up the pre-check.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Alias already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create alias: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, prepareAliasResponse(alias))
}

// DeleteAlias removes one alias. The lookup is scoped to the driver in
// the path, so naming the wrong driver cannot delete another driver's
// alias.
func DeleteAlias(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}

	aliasID, err := strconv.ParseUint(c.Param("alias_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alias ID format"})
		return
	}

	var alias models.Alias
	if err := config.DB.Where("id = ? AND driver_id = ?", uint(aliasID), driver.ID).
		First(&alias).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alias not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	// Hard delete: a soft-deleted row would keep occupying the
	// (type, value) unique index and block the pair from ever being
	// used again.
	if err := config.DB.Unscoped().Delete(&alias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete alias: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func prepareAliasResponse(alias models.Alias) gin.H {
	return gin.H{
		"id":          alias.ID,
		"driver_id":   alias.DriverID,
		"alias_type":  alias.AliasType,
		"alias_value": alias.AliasValue,
		"created_at":  alias.CreatedAt,
	}
}
