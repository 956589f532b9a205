package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidya-cue/teacher-api/internal/middleware"
	"github.com/vidya-cue/teacher-api/internal/models"
	appErrors "github.com/vidya-cue/teacher-api/pkg/errors"
	"github.com/vidya-cue/teacher-api/pkg/response"
)

type assignmentService interface {
	List(ctx context.Context, teacherID string) (*models.AssignmentList, error)
	Create(ctx context.Context, teacherID string, req models.Assignment) (*models.Assignment, error)
	Get(ctx context.Context, teacherID, id string) (*models.Assignment, error)
	Update(ctx context.Context, teacherID, id string, patch map[string]json.RawMessage) (*models.Assignment, error)
	Delete(ctx context.Context, teacherID, id string) error
	MarkGraded(ctx context.Context, teacherID, id string) (*models.Assignment, error)
	Remind(ctx context.Context, teacherID, id string) string
}

// AssignmentHandler wires HTTP endpoints to the assignment service.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler creates a new handler.
func NewAssignmentHandler(svc assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// List returns the teacher's assignments plus status counts.
func (h *AssignmentHandler) List(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	res, err := h.service.List(c.Request.Context(), claims.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Create stores a new assignment owned by the teacher.
func (h *AssignmentHandler) Create(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var req models.Assignment
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	res, err := h.service.Create(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, res)
}

// Get returns a single assignment by id.
func (h *AssignmentHandler) Get(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	res, err := h.service.Get(c.Request.Context(), claims.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Update shallow-merges the request body over the stored assignment.
func (h *AssignmentHandler) Update(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	res, err := h.service.Update(c.Request.Context(), claims.ID, c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Delete removes an assignment. Always reports success, even when nothing
// matched.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), claims.ID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Deleted successfully")
}

// MarkGraded transitions an assignment to graded.
func (h *AssignmentHandler) MarkGraded(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	res, err := h.service.MarkGraded(c.Request.Context(), claims.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Remind acknowledges a reminder request without dispatching anything.
func (h *AssignmentHandler) Remind(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	msg := h.service.Remind(c.Request.Context(), claims.ID, c.Param("id"))
	response.Message(c, msg)
}

func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	v, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	claims, ok := v.(*models.JWTClaims)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return claims, true
}
