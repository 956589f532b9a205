package models

import "encoding/json"

// Assignment status values. MarkGraded is the only server-driven transition;
// arbitrary updates may set any of these.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
)

// Assignment is a homework assignment owned by a single teacher.
type Assignment struct {
	ID             string `json:"id"`
	Title          string `json:"title,omitempty"`
	Subject        string `json:"subject,omitempty"`
	Course         string `json:"course,omitempty"`
	Status         string `json:"status,omitempty"`
	DueDate        string `json:"dueDate,omitempty"`
	TotalStudents  int    `json:"totalStudents"`
	SubmittedCount int    `json:"submittedCount"`
	GradedCount    int    `json:"gradedCount"`
	TeacherID      string `json:"teacherId"`
}

// AssignmentStats summarises one teacher's assignments by status.
type AssignmentStats struct {
	TotalAssignments int `json:"totalAssignments"`
	Pending          int `json:"pending"`
	Submitted        int `json:"submitted"`
	Graded           int `json:"graded"`
}

// AssignmentList is the list endpoint response.
type AssignmentList struct {
	Stats       AssignmentStats `json:"stats"`
	Assignments []Assignment    `json:"assignments"`
}

// ApplyPatch shallow-merges the raw JSON patch over the assignment. Caller
// supplied fields overwrite, all others are retained. The record identity
// fields id and teacherId are never patchable.
func (a *Assignment) ApplyPatch(patch map[string]json.RawMessage) error {
	base, err := json.Marshal(a)
	if err != nil {
		return err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}
	for key, value := range patch {
		if key == "id" || key == "teacherId" {
			continue
		}
		merged[key] = value
	}
	buf, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	var out Assignment
	if err := json.Unmarshal(buf, &out); err != nil {
		return err
	}
	*a = out
	return nil
}
