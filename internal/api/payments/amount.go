package payments

import (
	"net"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const customAmountFloor = 1.0

// resolveAmount turns the form's amount fields into dollars: either one of
// the fixed presets sent as a plain number, or "custom" plus customAmount
// with a $1 floor. Returns a caller-facing message on rejection.
func resolveAmount(amount, customAmount string) (float64, string) {
	if amount == "custom" {
		v, err := strconv.ParseFloat(strings.TrimSpace(customAmount), 64)
		if err != nil || v < customAmountFloor {
			return 0, "Custom amount must be at least $1"
		}
		return v, ""
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || v <= 0 {
		return 0, "Invalid amount"
	}
	return v, ""
}

// getString also accepts JSON numbers; clients send the preset amounts as
// either "50" or 50.
func getString(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

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
