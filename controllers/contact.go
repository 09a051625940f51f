package controllers

import (
	"fmt"
	"net/http"
	"net/smtp"
	"os"

	"tripverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmitContact persists a contact-form message and relays it to the site
// inbox over SMTP. The message is kept even when the relay fails so nothing
// a visitor wrote is lost.
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name    string `json:"name" binding:"required"`
			Email   string `json:"email" binding:"required,email"`
			Message string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required."})
			return
		}

		msg := models.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Message: input.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save message"})
			return
		}

		if err := relayContactMail(input.Name, input.Email, input.Message); err == nil {
			db.Model(&msg).Update("relayed", true)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully!"})
	}
}

func relayContactMail(name, email, message string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("smtp not configured")
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	to := os.Getenv("CONTACT_INBOX")
	if to == "" {
		to = user
	}

	body := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nReply-To: %s\r\nSubject: New Contact Inquiry from %s\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n",
		name, user, to, email, name, name, email, message,
	)

	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(host+":"+port, auth, user, []string{to}, []byte(body))
}

// GetContactMessages - Admin: review the inbox
func GetContactMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ContactMessage
		if err := db.Order("created_at desc").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
	}
}
