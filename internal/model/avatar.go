package model

import "time"

// Avatar is a stored image reference attachable to exactly one teacher or
// student.
type Avatar struct {
	ID         int       `json:"id"`
	AvatarLink string    `json:"avatar_link"`
	Format     string    `json:"format"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AvatarUpload references an already-uploaded image to attach to a user
// record during a profile update.
type AvatarUpload struct {
	Link   string `json:"link" binding:"required,max=512"`
	Format string `json:"format" binding:"omitempty,max=10"`
}
