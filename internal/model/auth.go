package model

// AuthUser is the authenticated-user object passed down from the request into
// the entity services. It carries only what authorization checks need.
type AuthUser struct {
	ID       int
	IsAdmin  bool
	IsMentor bool
	GroupID  int
}

// LoginRequest is the payload for teacher and student authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UpdatePasswordRequest is the payload for a self-service password change.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=6,max=128"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

// AdminSetPasswordRequest is the payload for an admin overriding another
// teacher's password without knowing the old one.
type AdminSetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

// ForgotPasswordRequest asks for a password-reset token to be issued and
// mailed to the account's address.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// ResetPasswordRequest redeems a previously issued reset token.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required,min=8,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}
