package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUnrecognizedPayments is a stub. The payment ingestion pipeline
// that will populate payment_raws and match rows to driver aliases is
// not built yet, so there is never anything to show.
func ListUnrecognizedPayments(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{})
}
