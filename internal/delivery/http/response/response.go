package response

import (
	"net/http"

	"go-jobboard-portal/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for errors and operational endpoints. Record
// bodies from the store are written raw, the way json-server clients expect.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
}

func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
}

// Health reports per-dependency status: 200 when every probe passed, 503 otherwise.
func Health(c *gin.Context, status map[string]string, healthy bool) {
	if !healthy {
		Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	Success(c, http.StatusOK, "System operational", status)
}
