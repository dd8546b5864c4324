package model

import "time"

// Teacher represents a teacher account. Teachers own groups of students and
// may carry the platform admin flag.
type Teacher struct {
	ID                   int        `json:"id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	IsAdmin              bool       `json:"is_admin"`
	AvatarID             *int       `json:"-"`
	AvatarLink           *string    `json:"avatar_link,omitempty"`
	ResetPasswordToken   *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// TeacherWithCounts decorates a teacher with derived listing counts: how many
// groups the teacher owns and how many students those groups hold in total.
type TeacherWithCounts struct {
	Teacher
	GroupsCount   int `json:"groups_count"`
	StudentsCount int `json:"students_count"`
}

// CreateTeacherRequest is the payload for creating a new teacher account.
// Only admins may create teachers; the is_admin flag is honored on this
// admin-driven path.
type CreateTeacherRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=255"`
	LastName  string `json:"last_name" binding:"required,min=1,max=255"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateTeacherRequest is the payload for updating a teacher profile.
// Pointer fields form the explicit allow-list of mutable columns; absent
// fields are left untouched.
type UpdateTeacherRequest struct {
	FirstName *string       `json:"first_name" binding:"omitempty,min=1,max=255"`
	LastName  *string       `json:"last_name" binding:"omitempty,min=1,max=255"`
	Email     *string       `json:"email" binding:"omitempty,email,max=255"`
	Avatar    *AvatarUpload `json:"avatar" binding:"omitempty"`
}
