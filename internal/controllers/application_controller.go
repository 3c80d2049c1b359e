package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gonzofleet/internal/config"
	"gonzofleet/internal/models"
)

// maxWebhookFormMemory bounds in-memory parsing of multipart webhook
// bodies; Fluent Forms submissions are small text fields.
const maxWebhookFormMemory = 4 << 20

// FluentFormsWebhook receives a form submission from WordPress and
// stores it as a pending application. The payload is kept opaque: JSON
// bodies are stored byte-for-byte (key order included), form-encoded
// bodies are folded into a JSON object. No field is validated.
func FluentFormsWebhook(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")

	var formData json.RawMessage
	if strings.Contains(contentType, "application/json") {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body: " + err.Error()})
			return
		}
		if !json.Valid(body) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body is not valid JSON"})
			return
		}
		formData = body
	} else {
		// Fluent Forms posts either url-encoded or multipart bodies.
		// ParseMultipartForm merges multipart values into PostForm.
		var err error
		if strings.Contains(contentType, "multipart/form-data") {
			err = c.Request.ParseMultipartForm(maxWebhookFormMemory)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse form body: " + err.Error()})
			return
		}
		fields := make(map[string]string, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		encoded, err := json.Marshal(fields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode form data"})
			return
		}
		formData = encoded
	}

	application := models.Application{
		Status:   models.ApplicationPending,
		FormData: datatypes.JSON(formData),
	}
	if err := config.DB.Create(&application).Error; err != nil {
		logrus.WithError(err).Error("failed to store application from webhook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store application: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "received",
		"application_id": application.ID,
	})
}

type updateApplicationInput struct {
	Status   *string `json:"status" binding:"omitempty,oneof=pending approved hold declined onboarding"`
	DriverID *uint   `json:"driver_id"`
}

// ListApplications returns applications for staff review, newest
// first, optionally filtered by status.
func ListApplications(c *gin.Context) {
	skip, limit := paginationParams(c)

	query := config.DB.Model(&models.Application{})
	if status, ok := c.GetQuery("status"); ok {
		query = query.Where("status = ?", status)
	}

	var applications []models.Application
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing applications: " + err.Error()})
		return
	}

	result := make([]gin.H, 0, len(applications))
	for _, application := range applications {
		result = append(result, prepareApplicationResponse(application))
	}
	c.JSON(http.StatusOK, result)
}

// GetApplication returns one application by id.
func GetApplication(c *gin.Context) {
	application, ok := findApplication(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, prepareApplicationResponse(application))
}

// UpdateApplication lets staff change an application's status or link
// it to a driver.
func UpdateApplication(c *gin.Context) {
	application, ok := findApplication(c)
	if !ok {
		return
	}

	var input updateApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.Status != nil {
		application.Status = *input.Status
	}
	if input.DriverID != nil {
		var driver models.Driver
		if err := config.DB.First(&driver, *input.DriverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
			}
			return
		}
		application.DriverID = input.DriverID
	}

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, prepareApplicationResponse(application))
}

func findApplication(c *gin.Context) (models.Application, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return models.Application{}, false
	}

	var application models.Application
	if err := config.DB.First(&application, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return models.Application{}, false
	}
	return application, true
}

func prepareApplicationResponse(application models.Application) gin.H {
	return gin.H{
		"id":         application.ID,
		"status":     application.Status,
		"form_data":  application.FormData,
		"driver_id":  application.DriverID,
		"created_at": application.CreatedAt,
		"updated_at": application.UpdatedAt,
	}
}
