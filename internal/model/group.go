package model

import "time"

// Group represents a study group owned by a teacher. Students self-enroll by
// presenting the group's unique join token.
type Group struct {
	ID         int       `json:"id"`
	GroupName  string    `json:"group_name"`
	GroupToken string    `json:"group_token"`
	TeacherID  *int      `json:"teacher_id"`
	AvatarID   *int      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GroupRef is an id/owner projection used when building teacher reports.
type GroupRef struct {
	ID        int  `json:"id"`
	TeacherID *int `json:"teacher_id"`
}

// CreateGroupRequest is the payload for creating a group. The join token is
// generated server side.
type CreateGroupRequest struct {
	GroupName string `json:"group_name" binding:"required,min=1,max=255"`
}

// UpdateGroupRequest is the payload for renaming a group.
type UpdateGroupRequest struct {
	GroupName *string `json:"group_name" binding:"omitempty,min=1,max=255"`
}
