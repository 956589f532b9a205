// Package seed bootstraps the data documents on first start so a fresh
// deployment has a working login and visible sample data.
package seed

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/store"
)

const (
	defaultTeacherEmail    = "priya.sharma@ecb.ac.in"
	defaultTeacherPassword = "password123"
)

// Run seeds the teacher and assignment collections if their documents are
// absent. Existing documents are never touched, so repeated startups are
// idempotent.
func Run(teachers *store.Collection[models.Teacher], assignments *store.Collection[models.Assignment], logger *zap.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultTeacherPassword), 10)
	if err != nil {
		return err
	}

	created, err := teachers.Seed([]models.Teacher{{
		ID:         "1",
		Name:       "Dr. Priya Sharma",
		Email:      defaultTeacherEmail,
		Password:   string(hash),
		Department: "Computer Science",
		Role:       models.RoleTeacher,
	}})
	if err != nil {
		return err
	}
	if created {
		logger.Info("default teacher created", zap.String("email", defaultTeacherEmail))
	}

	created, err = assignments.Seed([]models.Assignment{
		{
			ID:             "1",
			Title:          "Array Manipulation Challenge",
			Subject:        "Data Structures",
			Course:         "B.Tech CSE 3rd Sem",
			Status:         models.StatusPending,
			DueDate:        "2024-11-30",
			TotalStudents:  75,
			SubmittedCount: 18,
			GradedCount:    0,
			TeacherID:      "1",
		},
		{
			ID:             "2",
			Title:          "Algorithm Complexity Analysis",
			Subject:        "Algorithms",
			Course:         "B.Tech CSE 5th Sem",
			Status:         models.StatusGraded,
			DueDate:        "2024-11-25",
			TotalStudents:  68,
			SubmittedCount: 68,
			GradedCount:    68,
			TeacherID:      "1",
		},
	})
	if err != nil {
		return err
	}
	if created {
		logger.Info("sample assignments created")
	}

	return nil
}
