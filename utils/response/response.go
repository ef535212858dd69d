package response

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/services"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// DomainError maps a service error onto its HTTP status and error code.
// Unexpected errors become an opaque 500 so clients can tell invalid
// requests apart from "try again later".
func DomainError(c *gin.Context, err error) {
	if de, ok := services.AsDomainError(err); ok {
		c.JSON(de.Status, gin.H{"error": de.Message, "code": de.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "InternalError"})
}
