package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondOK writes a 200 response with success=true merged into the payload.
// The front-end views key off the "success" field, so handlers funnel through
// here to keep the shape uniform.
func RespondOK(c *gin.Context, data gin.H) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// RespondFail writes an error response with success=false and a message.
func RespondFail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondAppError maps a service error onto the HTTP contract: validation and
// conflict errors become 400, unknown ids 404, everything else is logged
// server-side and reported as a generic 500.
func RespondAppError(c *gin.Context, err error) {
	switch err.(type) {
	case *ValidationError, *ConflictError:
		RespondFail(c, http.StatusBadRequest, err.Error())
	case *NotFoundError:
		RespondFail(c, http.StatusNotFound, err.Error())
	default:
		ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RespondFail(c, http.StatusInternalServerError, "Internal error")
	}
}
