package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gonzofleet/internal/config"
	"gonzofleet/internal/models"
)

type createDriverInput struct {
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	BillingType      string `json:"billing_type" binding:"required,oneof=flat per_unit"`
	BillingRateCents int64  `json:"billing_rate_cents" binding:"min=0"`
	BillingActive    bool   `json:"billing_active"`
}

// updateDriverInput uses pointers so a PATCH only touches the fields
// the client actually sent.
type updateDriverInput struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	BillingType      *string `json:"billing_type" binding:"omitempty,oneof=flat per_unit"`
	BillingRateCents *int64  `json:"billing_rate_cents" binding:"omitempty,min=0"`
	BillingActive    *bool   `json:"billing_active"`
}

// ListDrivers returns drivers, optionally filtered by billing_active,
// paginated with skip/limit. Each row carries its computed balance.
func ListDrivers(c *gin.Context) {
	skip, limit := paginationParams(c)

	query := config.DB.Model(&models.Driver{})
	if raw, ok := c.GetQuery("billing_active"); ok {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "billing_active must be a boolean"})
			return
		}
		query = query.Where("billing_active = ?", active)
	}

	var drivers []models.Driver
	if err := query.Offset(skip).Limit(limit).Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	result := make([]gin.H, 0, len(drivers))
	for _, driver := range drivers {
		balance, err := driverBalanceCents(driver.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing balance: " + err.Error()})
			return
		}
		result = append(result, prepareDriverResponse(driver, balance))
	}

	c.JSON(http.StatusOK, result)
}

// CreateDriver inserts a new driver. A fresh driver has no ledger
// entries, so its balance is always zero.
func CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver := models.Driver{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		BillingType:      input.BillingType,
		BillingRateCents: input.BillingRateCents,
		BillingActive:    input.BillingActive,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, prepareDriverResponse(driver, 0))
}

// GetDriver returns one driver with its computed balance and the form
// data of the most recently created application linked to it. Newest
// wins regardless of application status.
func GetDriver(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}

	balance, err := driverBalanceCents(driver.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing balance: " + err.Error()})
		return
	}

	var application models.Application
	response := prepareDriverResponse(driver, balance)
	err = config.DB.Where("driver_id = ?", driver.ID).
		Order("created_at DESC").
		First(&application).Error
	switch {
	case err == nil:
		response["application_info"] = application.FormData
	case errors.Is(err, gorm.ErrRecordNotFound):
		response["application_info"] = nil
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateDriver applies a partial update; untouched fields keep their
// previous values.
func UpdateDriver(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.FirstName != nil {
		driver.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		driver.LastName = *input.LastName
	}
	if input.Email != nil {
		driver.Email = *input.Email
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.BillingType != nil {
		driver.BillingType = *input.BillingType
	}
	if input.BillingRateCents != nil {
		driver.BillingRateCents = *input.BillingRateCents
	}
	if input.BillingActive != nil {
		driver.BillingActive = *input.BillingActive
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver: " + err.Error()})
		return
	}

	balance, err := driverBalanceCents(driver.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing balance: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, prepareDriverResponse(driver, balance))
}

// ToggleBilling flips billing_active. Nothing else changes; in
// particular no ledger entry is written.
func ToggleBilling(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}

	driver.BillingActive = !driver.BillingActive
	if err := config.DB.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle billing: " + err.Error()})
		return
	}

	balance, err := driverBalanceCents(driver.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing balance: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, prepareDriverResponse(driver, balance))
}

// GetDriverLedger lists a driver's ledger entries, newest first. This
// surface is read-only; entries are written by the (external) payment
// reconciliation pipeline.
func GetDriverLedger(c *gin.Context) {
	driver, ok := findDriver(c)
	if !ok {
		return
	}
	skip, limit := paginationParams(c)

	var entries []models.Ledger
	if err := config.DB.Where("driver_id = ?", driver.ID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&entries).Error; err != nil {
		logrus.WithError(err).Error("failed to list ledger entries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing ledger: " + err.Error()})
		return
	}

	result := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		result = append(result, gin.H{
			"id":           entry.ID,
			"driver_id":    entry.DriverID,
			"type":         entry.Type,
			"amount_cents": entry.AmountCents,
			"description":  entry.Description,
			"created_at":   entry.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, result)
}

// driverBalanceCents derives the balance as credits minus debits, in
// integer cents so repeated entries never accumulate rounding drift.
func driverBalanceCents(driverID uint) (int64, error) {
	var cents int64
	err := config.DB.Model(&models.Ledger{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount_cents ELSE -amount_cents END), 0)", models.LedgerCredit).
		Where("driver_id = ?", driverID).
		Scan(&cents).Error
	return cents, err
}

// findDriver loads the driver named by the :id route param, writing
// the 400/404/500 response itself when that fails.
func findDriver(c *gin.Context) (models.Driver, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format"})
		return models.Driver{}, false
	}

	var driver models.Driver
	if err := config.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return models.Driver{}, false
	}
	return driver, true
}

func paginationParams(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		limit = 100
	}
	return skip, limit
}

func prepareDriverResponse(driver models.Driver, balanceCents int64) gin.H {
	return gin.H{
		"id":                 driver.ID,
		"first_name":         driver.FirstName,
		"last_name":          driver.LastName,
		"email":              driver.Email,
		"phone":              driver.Phone,
		"billing_type":       driver.BillingType,
		"billing_rate_cents": driver.BillingRateCents,
		"billing_active":     driver.BillingActive,
		"created_at":         driver.CreatedAt,
		"updated_at":         driver.UpdatedAt,
		"balance_cents":      balanceCents,
	}
}
