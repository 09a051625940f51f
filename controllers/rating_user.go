package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"tripverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GiveRating stores a rating and recomputes the package's denormalized
// summary in the same transaction. The recompute always aggregates the full
// rating set for the package rather than nudging a running average, so a
// rollback or concurrent submission can't leave the cache adrift.
func GiveRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PackageID uint     `json:"package_id"`
			Rating    float64  `json:"rating"`
			Review    string   `json:"review"`
			Images    []string `json:"images"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid rating data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "rating must be between 1 and 5"})
			return
		}

		var pkg models.Package
		if err := db.First(&pkg, req.PackageID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		rating := models.Rating{
			PackageID: pkg.ID,
			UserID:    userID,
			Value:     req.Rating,
			Review:    req.Review,
			Images:    strings.Join(req.Images, "|"),
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		// Row lock on the package: concurrent submissions for the same
		// package serialize here, and the recompute below must see every
		// committed rating row.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pkg, pkg.ID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save rating"})
			return
		}

		if err := tx.Create(&rating).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save rating"})
			return
		}

		var agg struct {
			Total int64
			Mean  float64
		}
		if err := tx.Model(&models.Rating{}).
			Select("COUNT(*) as total, COALESCE(AVG(value), 0) as mean").
			Where("package_id = ?", pkg.ID).
			Scan(&agg).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute rating average"})
			return
		}

		rounded := math.Round(agg.Mean*10) / 10

		if err := tx.Model(&models.Package{}).
			Where("id = ?", pkg.ID).
			Updates(map[string]interface{}{
				"rating":        rounded,
				"total_ratings": agg.Total,
			}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update package rating"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save rating"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":       true,
			"message":       "Rating submitted successfully",
			"rating":        rating,
			"averageRating": rounded,
			"totalRatings":  agg.Total,
		})
	}
}

// GetRatings lists ratings for a package, newest first, capped by the
// limit path param.
func GetRatings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		limit := 10
		if l, err := strconv.Atoi(c.Param("limit")); err == nil && l > 0 {
			if l > 1000 {
				l = 1000
			}
			limit = l
		}

		var ratings []models.Rating
		if err := db.Preload("User").
			Where("package_id = ?", id).
			Order("created_at desc").
			Limit(limit).
			Find(&ratings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch ratings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "ratings": ratings})
	}
}

// GetAverageRating reads the denormalized summary off the package record.
func GetAverageRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"rating":       pkg.Rating,
			"totalRatings": pkg.TotalRatings,
		})
	}
}
