package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/store"
)

func newTeacherRepo(t *testing.T) *TeacherRepository {
	t.Helper()
	coll, err := store.NewCollection[models.Teacher](t.TempDir(), "teachers")
	require.NoError(t, err)
	return NewTeacherRepository(coll)
}

func TestTeacherRepositoryFindByEmail(t *testing.T) {
	repo := newTeacherRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, models.Teacher{ID: "1", Email: "a@x.com", Name: "A"}))

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "1", found.ID)

	// Lookup key is case-insensitive.
	found, err = repo.FindByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.Equal(t, "1", found.ID)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestTeacherRepositoryInsertRejectsDuplicateEmail(t *testing.T) {
	repo := newTeacherRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, models.Teacher{ID: "1", Email: "a@x.com"}))

	err := repo.Insert(ctx, models.Teacher{ID: "2", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}
