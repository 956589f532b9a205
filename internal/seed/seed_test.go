package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/store"
)

func newCollections(t *testing.T) (*store.Collection[models.Teacher], *store.Collection[models.Assignment]) {
	t.Helper()
	dir := t.TempDir()
	teachers, err := store.NewCollection[models.Teacher](dir, "teachers")
	require.NoError(t, err)
	assignments, err := store.NewCollection[models.Assignment](dir, "assignments")
	require.NoError(t, err)
	return teachers, assignments
}

func TestRunSeedsDefaults(t *testing.T) {
	teachers, assignments := newCollections(t)
	require.NoError(t, Run(teachers, assignments, zap.NewNop()))

	ts, err := teachers.Load()
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "1", ts[0].ID)
	assert.Equal(t, defaultTeacherEmail, ts[0].Email)
	assert.Equal(t, models.RoleTeacher, ts[0].Role)
	// The default password is stored hashed, never in plaintext.
	assert.NotEqual(t, defaultTeacherPassword, ts[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(ts[0].Password), []byte(defaultTeacherPassword)))

	as, err := assignments.Load()
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, "1", as[0].TeacherID)
	assert.Equal(t, "1", as[1].TeacherID)
	assert.Equal(t, models.StatusPending, as[0].Status)
	assert.Equal(t, models.StatusGraded, as[1].Status)
}

func TestRunIsIdempotent(t *testing.T) {
	teachers, assignments := newCollections(t)
	require.NoError(t, Run(teachers, assignments, zap.NewNop()))

	ts, err := teachers.Load()
	require.NoError(t, err)
	firstHash := ts[0].Password

	require.NoError(t, Run(teachers, assignments, zap.NewNop()))

	ts, err = teachers.Load()
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, firstHash, ts[0].Password)

	as, err := assignments.Load()
	require.NoError(t, err)
	assert.Len(t, as, 2)
}
