package models

// RoleTeacher is the only role this service assigns.
const RoleTeacher = "teacher"

// Teacher represents an instructor account as stored on disk. Password holds
// the bcrypt hash, never plaintext.
type Teacher struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// TeacherInfo is the redacted view returned to clients.
type TeacherInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Info strips the credential fields for API responses.
func (t Teacher) Info() TeacherInfo {
	return TeacherInfo{
		ID:         t.ID,
		Name:       t.Name,
		Email:      t.Email,
		Department: t.Department,
	}
}
