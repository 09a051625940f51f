package controllers

import (
	"fmt"
	"net/http"
	"time"

	"tripverse/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// GetAllBookings - Admin: list every booking, optionally filtered by buyer
// name/email or status.
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking

		search := c.Query("searchTerm")
		status := c.Query("status")

		query := db.Preload("User").Preload("Package").Preload("Payment")

		if status != "" {
			query = query.Where("bookings.status = ?", status)
		}

		if search != "" {
			like := "%" + search + "%"
			query = query.Joins("JOIN users ON users.id = bookings.user_id").
				Where("LOWER(users.username) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?)", like, like)
		}

		if err := query.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
	}
}

// GetBookingDetails - Admin: one booking with all relations
func GetBookingDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var booking models.Booking
		if err := db.Preload("User").
			Preload("Package").
			Preload("Payment").
			First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
	}
}

// ExportBookings - Admin: download the full ledger as an .xlsx report
func ExportBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking
		if err := db.Preload("User").Preload("Package").Preload("Payment").
			Order("created_at DESC").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		f := excelize.NewFile()
		sheet := "Bookings"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"ID", "Buyer", "Email", "Package", "Destination", "Date", "Persons", "Unit Price", "Total Price", "Status", "Payment Ref"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, b := range bookings {
			providerTx := ""
			if b.Payment != nil {
				providerTx = b.Payment.ProviderTx
			}
			values := []interface{}{
				b.ID,
				b.User.Username,
				b.User.Email,
				b.Package.Name,
				b.Package.Destination,
				b.Date.Format("2006-01-02"),
				b.Persons,
				b.UnitPrice,
				b.TotalPrice,
				b.Status,
				providerTx,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write export"})
			return
		}
	}
}
