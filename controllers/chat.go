package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var chatHTTPClient = &http.Client{Timeout: 30 * time.Second}

// ChatHandler proxies the trip-recommendation chat to the upstream
// completion API. The prompt logic lives in the client; this is a plain
// pass-through so the API key never reaches the browser.
func ChatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Messages []chatMessage `json:"messages"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid messages array."})
			return
		}

		baseURL := os.Getenv("CHAT_API_URL")
		if baseURL == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Chat service not configured"})
			return
		}

		payload, err := json.Marshal(map[string]interface{}{
			"model":    os.Getenv("CHAT_MODEL"),
			"messages": req.Messages,
			"stream":   false,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to build request"})
			return
		}

		upstream, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, baseURL, bytes.NewReader(payload))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to build request"})
			return
		}
		upstream.Header.Set("Authorization", "Bearer "+os.Getenv("CHAT_API_KEY"))
		upstream.Header.Set("Content-Type", "application/json")

		resp, err := chatHTTPClient.Do(upstream)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to get chatbot response."})
			return
		}
		defer resp.Body.Close()

		var body struct {
			Choices []struct {
				Message chatMessage `json:"message"`
			} `json:"choices"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Choices) == 0 {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to get chatbot response."})
			return
		}

		c.JSON(http.StatusOK, body.Choices[0].Message)
	}
}
