package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"tripverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type packageInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Destination    string   `json:"destination"`
	Days           int      `json:"days"`
	Nights         int      `json:"nights"`
	Accommodation  string   `json:"accommodation"`
	Transportation string   `json:"transportation"`
	Meals          string   `json:"meals"`
	Activities     string   `json:"activities"`
	Price          float64  `json:"price"`
	DiscountPrice  float64  `json:"discount_price"`
	Offer          bool     `json:"offer"`
	Images         []string `json:"images"`
}

func validatePackageInput(in *packageInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "name is required"
	case strings.TrimSpace(in.Description) == "":
		return "description is required"
	case strings.TrimSpace(in.Destination) == "":
		return "destination is required"
	case in.Days < 1:
		return "days must be at least 1"
	case len(in.Images) == 0:
		return "at least one image is required"
	case in.Price <= 500:
		return "price should be greater than 500"
	case in.Offer && in.DiscountPrice <= 0:
		return "discount price is required when offer is set"
	case in.Offer && in.DiscountPrice >= in.Price:
		return "regular price should be greater than discount price"
	}
	return ""
}

// AdminCreatePackage adds a package to the catalog
func AdminCreatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in packageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if msg := validatePackageInput(&in); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		pkg := models.Package{
			Name:           in.Name,
			Description:    in.Description,
			Destination:    in.Destination,
			Days:           in.Days,
			Nights:         in.Nights,
			Accommodation:  in.Accommodation,
			Transportation: in.Transportation,
			Meals:          in.Meals,
			Activities:     in.Activities,
			Price:          in.Price,
			DiscountPrice:  in.DiscountPrice,
			Offer:          in.Offer,
		}
		pkg.SetImages(in.Images)

		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create package"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Package created successfully", "package": pkg})
	}
}

// AdminUpdatePackage edits package fields. The rating summary is owned by the
// rating flow and is deliberately left untouched here.
func AdminUpdatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid package ID"})
			return
		}

		var in packageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if msg := validatePackageInput(&in); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		pkg.Name = in.Name
		pkg.Description = in.Description
		pkg.Destination = in.Destination
		pkg.Days = in.Days
		pkg.Nights = in.Nights
		pkg.Accommodation = in.Accommodation
		pkg.Transportation = in.Transportation
		pkg.Meals = in.Meals
		pkg.Activities = in.Activities
		pkg.Price = in.Price
		pkg.DiscountPrice = in.DiscountPrice
		pkg.Offer = in.Offer
		pkg.SetImages(in.Images)

		if err := db.Save(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update package"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Package updated successfully", "package": pkg})
	}
}

// AdminDeletePackage removes a package and its ratings
func AdminDeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid package ID"})
			return
		}

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		if err := db.Where("package_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete package ratings"})
			return
		}

		if err := db.Unscoped().Delete(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete package"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Package deleted successfully"})
	}
}
