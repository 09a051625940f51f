package controllers

import (
	"net/http"
	"time"

	"tripverse/models"
	"tripverse/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllUsers - Admin: fetch all users with optional name/email search
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		search := c.Query("searchTerm")

		query := db.Model(&models.User{}).
			Preload("Bookings").
			Where("role = ?", "user")

		if search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
		}

		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}

		for i := range users {
			users[i].BookingCount = int64(len(users[i].Bookings))
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// UpdateUser - profile field updates (username, address, phone)
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input struct {
			Username string `json:"username"`
			Address  string `json:"address"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if input.Username != "" {
			user.Username = input.Username
		}
		if input.Address != "" {
			user.Address = input.Address
		}
		if input.Phone != "" {
			user.Phone = input.Phone
		}
		user.UpdatedAt = time.Now()

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"address":  user.Address,
			"phone":    user.Phone,
			"avatar":   user.Avatar,
		}})
	}
}

// UpdatePassword - verifies the old password before setting the new one
func UpdatePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input struct {
			OldPassword string `json:"old_password" binding:"required"`
			NewPassword string `json:"new_password" binding:"required,min=6"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if !utils.CheckPasswordHash(input.OldPassword, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect current password"})
			return
		}

		hashed, err := utils.HashPassword(input.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"password":   hashed,
			"updated_at": time.Now(),
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
	}
}

// UpdateProfilePhoto - stores the hosted avatar URL the client uploaded
func UpdateProfilePhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input struct {
			Avatar string `json:"avatar" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "avatar URL is required"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		user.Avatar = input.Avatar
		user.UpdatedAt = time.Now()
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile photo"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile photo updated", "avatar": user.Avatar})
	}
}

// BlockUser - Admin: toggle user status
func BlockUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var user models.User

		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		user.Blocked = !user.Blocked
		db.Save(&user)
		status := "unblocked"
		if user.Blocked {
			status = "blocked"
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User " + status + " successfully"})
	}
}

// DeleteUser removes a user and their bookings; used both by the admin
// back office and by self-service account deletion.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if err := db.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user bookings"})
			return
		}

		if err := db.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user sessions"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
	}
}
