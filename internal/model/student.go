package model

import "time"

// Student represents a student account. A student belongs to at most one
// group, joined by presenting the group's enrollment token.
type Student struct {
	ID                   int        `json:"id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	PhoneNumber          string     `json:"phone_number"`
	IsMentor             bool       `json:"is_mentor"`
	GroupID              *int       `json:"group_id"`
	AvatarID             *int       `json:"-"`
	AvatarLink           *string    `json:"avatar_link,omitempty"`
	ResetPasswordToken   *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// StudentRef is an id/group projection used when building teacher reports.
type StudentRef struct {
	ID      int  `json:"id"`
	GroupID *int `json:"group_id"`
}

// CreateStudentRequest is the payload for student self-registration. The
// group token is the sole enrollment mechanism: it resolves to the group the
// new student is placed into.
type CreateStudentRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=255"`
	LastName    string `json:"last_name" binding:"required,min=1,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
	GroupToken  string `json:"group_token" binding:"required,min=8,max=255"`
}

// UpdateStudentRequest is the payload for updating a student profile.
// Pointer fields form the explicit allow-list of mutable columns.
type UpdateStudentRequest struct {
	FirstName   *string       `json:"first_name" binding:"omitempty,min=1,max=255"`
	LastName    *string       `json:"last_name" binding:"omitempty,min=1,max=255"`
	Email       *string       `json:"email" binding:"omitempty,email,max=255"`
	PhoneNumber *string       `json:"phone_number" binding:"omitempty,max=20"`
	Avatar      *AvatarUpload `json:"avatar" binding:"omitempty"`
}
