package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidya-cue/teacher-api/internal/models"
	appErrors "github.com/vidya-cue/teacher-api/pkg/errors"
	"github.com/vidya-cue/teacher-api/pkg/response"
)

type teacherAuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service teacherAuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc teacherAuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login authenticates a teacher by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Register creates a teacher account and returns a fresh token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, res)
}
