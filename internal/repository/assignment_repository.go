package repository

import (
	"context"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/store"
)

// AssignmentRepository manages persistence for assignments. Every operation
// reads and rewrites the whole collection document; ownership scoping is
// enforced here so callers can only ever see their own records.
type AssignmentRepository struct {
	coll *store.Collection[models.Assignment]
}

// NewAssignmentRepository constructs an AssignmentRepository.
func NewAssignmentRepository(coll *store.Collection[models.Assignment]) *AssignmentRepository {
	return &AssignmentRepository{coll: coll}
}

// ListByTeacher returns the teacher's assignments in storage order.
func (r *AssignmentRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Assignment, error) {
	assignments, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	owned := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.TeacherID == teacherID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

// Insert appends the assignment and rewrites the collection.
func (r *AssignmentRepository) Insert(ctx context.Context, assignment models.Assignment) error {
	_, err := r.coll.Mutate(func(assignments []models.Assignment) ([]models.Assignment, error) {
		return append(assignments, assignment), nil
	})
	return err
}

// FindOwned returns the assignment matching both id and owner, or
// ErrRecordNotFound. An id owned by another teacher is indistinguishable
// from a missing one.
func (r *AssignmentRepository) FindOwned(ctx context.Context, id, teacherID string) (*models.Assignment, error) {
	assignments, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].ID == id && assignments[i].TeacherID == teacherID {
			a := assignments[i]
			return &a, nil
		}
	}
	return nil, ErrRecordNotFound
}

// UpdateOwned applies fn to the matching record in place and persists the
// collection. Returns the updated record, or ErrRecordNotFound when no
// record matches id and owner.
func (r *AssignmentRepository) UpdateOwned(ctx context.Context, id, teacherID string, fn func(*models.Assignment) error) (*models.Assignment, error) {
	var updated models.Assignment
	_, err := r.coll.Mutate(func(assignments []models.Assignment) ([]models.Assignment, error) {
		for i := range assignments {
			if assignments[i].ID == id && assignments[i].TeacherID == teacherID {
				if err := fn(&assignments[i]); err != nil {
					return nil, err
				}
				updated = assignments[i]
				return assignments, nil
			}
		}
		return nil, ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOwned removes the matching record. Deleting a record that does not
// exist (or belongs to someone else) is a no-op, not an error.
func (r *AssignmentRepository) DeleteOwned(ctx context.Context, id, teacherID string) error {
	_, err := r.coll.Mutate(func(assignments []models.Assignment) ([]models.Assignment, error) {
		kept := assignments[:0]
		for _, a := range assignments {
			if a.ID == id && a.TeacherID == teacherID {
				continue
			}
			kept = append(kept, a)
		}
		return kept, nil
	})
	return err
}
