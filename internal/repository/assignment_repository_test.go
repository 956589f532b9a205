package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/store"
)

func newAssignmentRepo(t *testing.T) *AssignmentRepository {
	t.Helper()
	coll, err := store.NewCollection[models.Assignment](t.TempDir(), "assignments")
	require.NoError(t, err)
	return NewAssignmentRepository(coll)
}

func TestAssignmentRepositoryInsertAndFind(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	a := models.Assignment{ID: "a1", Title: "T1", TeacherID: "t1", TotalStudents: 10}
	require.NoError(t, repo.Insert(ctx, a))

	found, err := repo.FindOwned(ctx, "a1", "t1")
	require.NoError(t, err)
	assert.Equal(t, a, *found)
}

func TestAssignmentRepositoryOwnershipScoping(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, models.Assignment{ID: "a1", TeacherID: "t1"}))

	_, err := repo.FindOwned(ctx, "a1", "t2")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.UpdateOwned(ctx, "a1", "t2", func(a *models.Assignment) error {
		a.Title = "hijacked"
		return nil
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// A foreign delete must be a silent no-op, leaving the record intact.
	require.NoError(t, repo.DeleteOwned(ctx, "a1", "t2"))
	found, err := repo.FindOwned(ctx, "a1", "t1")
	require.NoError(t, err)
	assert.Empty(t, found.Title)
}

func TestAssignmentRepositoryListByTeacher(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, models.Assignment{ID: "a1", TeacherID: "t1"}))
	require.NoError(t, repo.Insert(ctx, models.Assignment{ID: "a2", TeacherID: "t2"}))
	require.NoError(t, repo.Insert(ctx, models.Assignment{ID: "a3", TeacherID: "t1"}))

	owned, err := repo.ListByTeacher(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "a1", owned[0].ID)
	assert.Equal(t, "a3", owned[1].ID)
}

func TestAssignmentRepositoryUpdateOwnedPersists(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, models.Assignment{ID: "a1", TeacherID: "t1", SubmittedCount: 4}))

	updated, err := repo.UpdateOwned(ctx, "a1", "t1", func(a *models.Assignment) error {
		a.Status = models.StatusGraded
		a.GradedCount = a.SubmittedCount
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusGraded, updated.Status)
	assert.Equal(t, 4, updated.GradedCount)

	found, err := repo.FindOwned(ctx, "a1", "t1")
	require.NoError(t, err)
	assert.Equal(t, *updated, *found)
}

func TestAssignmentRepositoryDeleteMissingIsNoop(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DeleteOwned(ctx, "ghost", "t1"))

	require.NoError(t, repo.Insert(ctx, models.Assignment{ID: "a1", TeacherID: "t1"}))
	require.NoError(t, repo.DeleteOwned(ctx, "a1", "t1"))
	require.NoError(t, repo.DeleteOwned(ctx, "a1", "t1"))

	owned, err := repo.ListByTeacher(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, owned)
}
