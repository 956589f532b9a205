package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/vidya-cue/teacher-api/pkg/errors"
)

// JSON sends a success response with the payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds 200 with a plain message body.
func Message(c *gin.Context, msg string) {
	JSON(c, http.StatusOK, gin.H{"message": msg})
}

// Error maps the error to its HTTP status with a {message} body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}
