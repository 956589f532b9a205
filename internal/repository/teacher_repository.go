package repository

import (
	"context"
	"strings"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/store"
)

// TeacherRepository manages persistence for teacher accounts.
type TeacherRepository struct {
	coll *store.Collection[models.Teacher]
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(coll *store.Collection[models.Teacher]) *TeacherRepository {
	return &TeacherRepository{coll: coll}
}

// FindByEmail scans the collection for a teacher with the given email
// (case-insensitive on the lookup key, as logins arrive user-typed).
func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	teachers, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if strings.EqualFold(teachers[i].Email, email) {
			t := teachers[i]
			return &t, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Insert appends the teacher and rewrites the collection. It re-checks the
// email under the collection lock so two concurrent registrations for the
// same address cannot both land.
func (r *TeacherRepository) Insert(ctx context.Context, teacher models.Teacher) error {
	_, err := r.coll.Mutate(func(teachers []models.Teacher) ([]models.Teacher, error) {
		for i := range teachers {
			if strings.EqualFold(teachers[i].Email, teacher.Email) {
				return nil, ErrDuplicateRecord
			}
		}
		return append(teachers, teacher), nil
	})
	return err
}
