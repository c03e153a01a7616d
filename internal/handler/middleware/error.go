package middleware

import (
	"log/slog"
	"net/http"

	"rental-marketplace/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Response{Message: "Internal server error"})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
					Status:  http.StatusInternalServerError,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes with the error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.Response{
			Message: "Route " + c.Request.URL.Path + " not found",
		})
	}
}
