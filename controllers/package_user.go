package controllers

import (
	"net/http"
	"strconv"

	"tripverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPackages lists packages for the public catalog pages. Supports
// searchTerm (name/destination), sort (createdAt | packageRating | price),
// offer=true, limit and offset.
func GetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Package{})

		if search := c.Query("searchTerm"); search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(destination) LIKE LOWER(?)", like, like)
		}

		if c.Query("offer") == "true" {
			query = query.Where("offer = ?", true)
		}

		switch c.Query("sort") {
		case "packageRating":
			query = query.Order("rating desc")
		case "price":
			query = query.Order("price asc")
		default:
			query = query.Order("created_at desc")
		}

		limit := 20
		if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
			limit = l
		}
		offset := 0
		if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
			offset = o
		}

		var packages []models.Package
		if err := query.Limit(limit).Offset(offset).Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch packages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "packages": packages})
	}
}

// GetPackageData returns one package including the denormalized rating summary.
func GetPackageData(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "packageData": pkg})
	}
}
