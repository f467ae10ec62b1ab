package response

import "github.com/gin-gonic/gin"

// Success bodies are the raw resource JSON; only failures are wrapped in
// a structured envelope so clients can branch on a stable error code.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, gin.H{
		"error": ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
