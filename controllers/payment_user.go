package controllers

import (
	"net/http"

	"tripverse/models"
	"tripverse/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetGatewayToken issues the client token the payment drop-in widget needs
// before a booking is submitted. The gateway itself is a black box here.
func GetGatewayToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.GenerateClientToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate client token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "clientToken": token})
	}
}

// GetUserPayments lists a buyer's payments, newest first
func GetUserPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		var payments []models.Payment
		if err := db.Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Where("bookings.user_id = ?", userID).
			Order("payments.created_at desc").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
	}
}

// GetAllPayments - Admin: full payment list
func GetAllPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.Payment
		if err := db.Order("created_at desc").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
	}
}
