package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patch(t *testing.T, payload string) map[string]json.RawMessage {
	t.Helper()
	var p map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	return p
}

func TestApplyPatchOverwritesOnlySuppliedFields(t *testing.T) {
	a := Assignment{
		ID:            "a1",
		Title:         "Original",
		Subject:       "Math",
		Status:        StatusPending,
		DueDate:       "2024-11-30",
		TotalStudents: 40,
		TeacherID:     "t1",
	}

	require.NoError(t, a.ApplyPatch(patch(t, `{"title":"New title","submittedCount":7}`)))

	assert.Equal(t, "New title", a.Title)
	assert.Equal(t, 7, a.SubmittedCount)
	assert.Equal(t, "Math", a.Subject)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, "2024-11-30", a.DueDate)
	assert.Equal(t, 40, a.TotalStudents)
}

func TestApplyPatchKeepsIdentityFields(t *testing.T) {
	a := Assignment{ID: "a1", TeacherID: "t1"}

	require.NoError(t, a.ApplyPatch(patch(t, `{"id":"forged","teacherId":"intruder","title":"ok"}`)))

	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, "t1", a.TeacherID)
	assert.Equal(t, "ok", a.Title)
}

func TestApplyPatchRejectsWrongTypes(t *testing.T) {
	a := Assignment{ID: "a1", Title: "Original"}

	err := a.ApplyPatch(patch(t, `{"totalStudents":"forty"}`))
	require.Error(t, err)
	// The record is untouched on a failed merge.
	assert.Equal(t, "Original", a.Title)
}
