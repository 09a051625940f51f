package controllers

import (
	"net/http"

	"tripverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func (ac *AnalyticsController) GetDashboardStats(c *gin.Context) {
	var userCount, packageCount, bookingCount, ratingCount int64

	ac.DB.Model(&models.User{}).Where("role = ?", "user").Count(&userCount)
	ac.DB.Model(&models.Package{}).Count(&packageCount)
	ac.DB.Model(&models.Booking{}).Count(&bookingCount)
	ac.DB.Model(&models.Rating{}).Count(&ratingCount)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"total_users":    userCount,
		"total_packages": packageCount,
		"total_bookings": bookingCount,
		"total_ratings":  ratingCount,
	})
}

func (ac *AnalyticsController) GetDailyRevenue(c *gin.Context) {
	type RevenueData struct {
		Date    string  `json:"date"`
		Revenue float64 `json:"revenue"`
	}

	var results []RevenueData

	ac.DB.
		Model(&models.Booking{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, SUM(total_price) as revenue").
		Where("status = ?", models.BookingStatusBooked).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("TO_CHAR(created_at, 'YYYY-MM-DD') ASC").
		Limit(7).
		Scan(&results)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
	})
}

func (ac *AnalyticsController) GetTopPackages(c *gin.Context) {
	type PackageData struct {
		Package  string `json:"package"`
		Bookings int64  `json:"bookings"`
	}

	var results []PackageData

	ac.DB.Table("bookings").
		Select("packages.name as package, COUNT(bookings.id) as bookings").
		Joins("JOIN packages ON packages.id = bookings.package_id").
		Group("packages.name").
		Order("bookings DESC").
		Limit(7).
		Scan(&results)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
	})
}
