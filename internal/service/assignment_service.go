package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/repository"
	appErrors "github.com/vidya-cue/teacher-api/pkg/errors"
)

type assignmentRepo interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Assignment, error)
	Insert(ctx context.Context, assignment models.Assignment) error
	FindOwned(ctx context.Context, id, teacherID string) (*models.Assignment, error)
	UpdateOwned(ctx context.Context, id, teacherID string, fn func(*models.Assignment) error) (*models.Assignment, error)
	DeleteOwned(ctx context.Context, id, teacherID string) error
}

// AssignmentService implements the assignment operations, each scoped to the
// authenticated teacher passed in explicitly by the handler.
type AssignmentService struct {
	repo   assignmentRepo
	logger *zap.Logger
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(repo assignmentRepo, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{repo: repo, logger: logger}
}

// List returns the teacher's assignments in storage order plus per-status
// counts.
func (s *AssignmentService) List(ctx context.Context, teacherID string) (*models.AssignmentList, error) {
	assignments, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}

	stats := models.AssignmentStats{TotalAssignments: len(assignments)}
	for _, a := range assignments {
		switch a.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusSubmitted:
			stats.Submitted++
		case models.StatusGraded:
			stats.Graded++
		}
	}

	return &models.AssignmentList{Stats: stats, Assignments: assignments}, nil
}

// Create stores a new assignment owned by the teacher. The id and owner are
// always server-assigned; counts default to zero when the payload omits them.
func (s *AssignmentService) Create(ctx context.Context, teacherID string, req models.Assignment) (*models.Assignment, error) {
	req.ID = newRecordID()
	req.TeacherID = teacherID

	if err := s.repo.Insert(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist assignment")
	}

	s.logger.Info("assignment created", zap.String("assignment_id", req.ID), zap.String("teacher_id", teacherID))
	return &req, nil
}

// Get returns the assignment matching id and owner.
func (s *AssignmentService) Get(ctx context.Context, teacherID, id string) (*models.Assignment, error) {
	assignment, err := s.repo.FindOwned(ctx, id, teacherID)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return assignment, nil
}

// Update shallow-merges the patch over the stored record. Top-level fields
// supplied by the caller overwrite; id and teacherId stay fixed.
func (s *AssignmentService) Update(ctx context.Context, teacherID, id string, patch map[string]json.RawMessage) (*models.Assignment, error) {
	assignment, err := s.repo.UpdateOwned(ctx, id, teacherID, func(a *models.Assignment) error {
		return a.ApplyPatch(patch)
	})
	if err != nil {
		return nil, s.lookupError(err)
	}
	return assignment, nil
}

// Delete removes the assignment. Deleting an id that does not exist or is
// owned by another teacher still succeeds; the endpoint always reports
// success.
func (s *AssignmentService) Delete(ctx context.Context, teacherID, id string) error {
	if err := s.repo.DeleteOwned(ctx, id, teacherID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete assignment")
	}
	return nil
}

// MarkGraded transitions the assignment to graded, setting gradedCount to
// submittedCount. Reapplying it to an already-graded assignment is a no-op.
func (s *AssignmentService) MarkGraded(ctx context.Context, teacherID, id string) (*models.Assignment, error) {
	assignment, err := s.repo.UpdateOwned(ctx, id, teacherID, func(a *models.Assignment) error {
		a.Status = models.StatusGraded
		a.GradedCount = a.SubmittedCount
		return nil
	})
	if err != nil {
		return nil, s.lookupError(err)
	}
	return assignment, nil
}

// Remind acknowledges a reminder request. Actual delivery belongs to an
// external messaging service this API does not integrate.
func (s *AssignmentService) Remind(ctx context.Context, teacherID, id string) string {
	s.logger.Info("reminder requested", zap.String("assignment_id", id), zap.String("teacher_id", teacherID))
	return "Reminder triggered (implement actual logic)"
}

func (s *AssignmentService) lookupError(err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to access assignments")
}
