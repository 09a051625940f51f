package controllers

import (
	"net/http"
	"time"

	"tripverse/models"
	"tripverse/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const bookingDateLayout = "2006-01-02"

func startOfToday(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// BookPackage creates a booking at the package's current price. The unit
// price and total are frozen into the row; later price edits never touch it.
func BookPackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Date          string `json:"date"`
			Persons       int    `json:"persons"`
			PaymentMethod string `json:"payment_method"`
			PaymentNonce  string `json:"payment_nonce"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid booking data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		if req.Persons < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "persons must be at least 1"})
			return
		}

		// Parse in the server zone; the comparison below is calendar date
		// against calendar date, not instant against instant.
		date, err := time.ParseInLocation(bookingDateLayout, req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date must be in YYYY-MM-DD format"})
			return
		}
		// Strictly future: earliest bookable date is tomorrow.
		if !date.After(startOfToday(time.Now())) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date must be a future date"})
			return
		}

		var pkg models.Package
		if err := db.First(&pkg, c.Param("packageId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		unitPrice := pkg.Price
		if pkg.Offer && pkg.DiscountPrice > 0 {
			unitPrice = pkg.DiscountPrice
		}
		totalPrice := unitPrice * float64(req.Persons)

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		booking := models.Booking{
			UserID:     userID,
			PackageID:  pkg.ID,
			Date:       date,
			Persons:    req.Persons,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
			Status:     models.BookingStatusBooked,
			CreatedAt:  time.Now(),
		}

		if err := tx.Create(&booking).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking"})
			return
		}

		txRef, err := utils.ProcessPaymentStub(totalPrice, req.PaymentMethod, req.PaymentNonce)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Payment failed"})
			return
		}

		payment := models.Payment{
			BookingID:  booking.ID,
			Method:     req.PaymentMethod,
			ProviderTx: txRef,
			Amount:     totalPrice,
			Status:     "completed",
		}
		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save booking"})
			return
		}

		var fullBooking models.Booking
		if err := db.Preload("Package").Preload("Payment").First(&fullBooking, booking.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch booking details"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Package booked successfully",
			"booking": fullBooking,
		})
	}
}

// CancelBooking flips a future, active booking to Cancelled. One-way.
func CancelBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.Param("userId")

		var booking models.Booking
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&booking).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}

		if booking.Status == models.BookingStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Booking is already cancelled"})
			return
		}
		if booking.IsPast(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot cancel a past booking"})
			return
		}

		booking.Status = models.BookingStatusCancelled
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to cancel booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled successfully", "booking": booking})
	}
}

// GetUserCurrentBookings lists active, future-dated bookings for a buyer.
// "Current" is a derived predicate, not a stored field.
func GetUserCurrentBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		query := db.Preload("Package").Preload("Payment").
			Where("bookings.user_id = ?", userID).
			Where("bookings.status = ?", models.BookingStatusBooked).
			Where("bookings.date >= ?", startOfToday(time.Now()))

		if search := c.Query("searchTerm"); search != "" {
			like := "%" + search + "%"
			query = query.Joins("JOIN packages ON packages.id = bookings.package_id").
				Where("LOWER(packages.name) LIKE LOWER(?) OR LOWER(packages.destination) LIKE LOWER(?)", like, like)
		}

		var bookings []models.Booking
		if err := query.Order("bookings.date asc").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
	}
}

// GetUserBookingHistory lists past-dated or cancelled bookings for a buyer.
func GetUserBookingHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		query := db.Preload("Package").Preload("Payment").
			Where("bookings.user_id = ?", userID).
			Where("bookings.date < ? OR bookings.status = ?", startOfToday(time.Now()), models.BookingStatusCancelled)

		if search := c.Query("searchTerm"); search != "" {
			like := "%" + search + "%"
			query = query.Joins("JOIN packages ON packages.id = bookings.package_id").
				Where("LOWER(packages.name) LIKE LOWER(?) OR LOWER(packages.destination) LIKE LOWER(?)", like, like)
		}

		var bookings []models.Booking
		if err := query.Order("bookings.date desc").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch booking history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
	}
}

// DeleteBookingHistory hard-deletes a terminal booking (past date or
// cancelled). Active future bookings cannot be removed from the ledger.
func DeleteBookingHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.Param("userId")

		var booking models.Booking
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&booking).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}

		if !booking.IsPast(time.Now()) && booking.Status != models.BookingStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only past or cancelled bookings can be deleted"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.Payment{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete booking payment"})
			return
		}
		if err := tx.Delete(&booking).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete booking"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking removed from history"})
	}
}
