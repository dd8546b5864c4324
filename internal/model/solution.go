package model

import "time"

// Solution is a student's submission for a task. Comments attach to
// solutions.
type Solution struct {
	ID        int       `json:"id"`
	TaskName  string    `json:"task_name"`
	StudentID *int      `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSolutionRequest is the payload for submitting a solution. The
// submitting student is taken from the authenticated user.
type CreateSolutionRequest struct {
	TaskName string `json:"task_name" binding:"required,min=1,max=255"`
}
