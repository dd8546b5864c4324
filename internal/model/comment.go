package model

import "time"

// Comment is a free-text note attached to a solution. Exactly one of
// StudentID/TeacherID is populated, depending on who authored it.
type Comment struct {
	ID         int       `json:"id"`
	SolutionID *int      `json:"solution_id"`
	StudentID  *int      `json:"student_id"`
	TeacherID  *int      `json:"teacher_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCommentRequest is the payload for commenting on a solution. The
// author is taken from the authenticated user, never from the payload.
type CreateCommentRequest struct {
	SolutionID int    `json:"solution_id" binding:"required,min=1"`
	Text       string `json:"text" binding:"required,min=1,max=2000"`
}
