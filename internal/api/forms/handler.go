package formsapi

import (
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"shambala-backend/database"
	"shambala-backend/internal/domain/forms"

	"github.com/gin-gonic/gin"
)

// POST /api/submit-basic-form/
func SubmitBasicForm(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	for _, field := range []string{"name", "email", "phone"} {
		if getString(data, field) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Missing required field: " + field,
			})
			return
		}
	}

	submission := forms.BasicFormSubmission{
		Name:      getString(data, "name"),
		Email:     getString(data, "email"),
		Phone:     getString(data, "phone"),
		Message:   getString(data, "message"),
		IPAddress: clientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := database.DB.Create(&submission).Error; err != nil {
		log.Println("basic form insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while processing your request",
		})
		return
	}

	// Outbound notification is deliberately not implemented.

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Basic form submitted successfully",
		"data":    data,
	})
}

func getString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// clientIP takes the first forwarded-for entry when present, otherwise the
// direct connection address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
