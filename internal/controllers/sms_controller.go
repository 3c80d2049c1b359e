package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"gonzofleet/internal/config"
	"gonzofleet/internal/models"
	"gonzofleet/internal/services"
)

// SMSClient is the OpenPhone client used by SendSMS. main wires the
// real one; tests swap in a client pointed at a fake server.
var SMSClient *services.OpenPhoneClient

type sendSmsInput struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendSMS sends one message through OpenPhone. Every attempt is logged
// to sms_logs before the response goes out, failures included; the log
// row is the audit trail even when the caller gets a 500.
func SendSMS(c *gin.Context) {
	var input sendSmsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := SMSClient.SendSMS(c.Request.Context(), input.Phone, input.Message)

	status := models.SmsSent
	if !result.Success {
		status = models.SmsFailed
	}
	smsLog := models.SmsLog{
		Phone:    input.Phone,
		Message:  input.Message,
		Status:   status,
		Response: datatypes.JSON(result.Raw),
	}
	if err := config.DB.Create(&smsLog).Error; err != nil {
		logrus.WithError(err).Error("failed to write sms log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log SMS attempt: " + err.Error()})
		return
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Failed to send SMS"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message_id": result.MessageID,
	})
}
