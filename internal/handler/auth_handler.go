package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/mailer"
	"github.com/mentorhub/mentorhub-backend/internal/middleware"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	teacherService *service.TeacherService
	studentService *service.StudentService
	mail           mailer.Mailer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	teacherService *service.TeacherService,
	studentService *service.StudentService,
	mail mailer.Mailer,
) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		teacherService: teacherService,
		studentService: studentService,
		mail:           mail,
	}
}

// TeacherLogin godoc
// POST /api/v1/auth/teacher/login
// Validates email + password and returns a teacher JWT.
func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(teacher.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateTeacherToken(teacher.ID, teacher.IsAdmin)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	teacher.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{
		"token":   token,
		"teacher": teacher,
	})
}

// StudentLogin godoc
// POST /api/v1/auth/student/login
// Validates email + password, checks for an existing session (rejects if
// active), returns a student JWT.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(student.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	groupID := 0
	if student.GroupID != nil {
		groupID = *student.GroupID
	}
	token, err := h.authService.GenerateStudentToken(c.Request.Context(), student.ID, groupID, student.IsMentor)
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyActive) {
			response.Fail(c, http.StatusConflict, response.ErrSessionActive)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	student.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{
		"token":   token,
		"student": student,
	})
}

// GetTeacherProfile godoc
// GET /api/v1/auth/teacher/me
// Returns the profile of the currently authenticated teacher.
func (h *AuthHandler) GetTeacherProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	teacher, err := h.teacherService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	teacher.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// GetStudentProfile godoc
// GET /api/v1/auth/student/me
// Returns the profile of the currently authenticated student.
func (h *AuthHandler) GetStudentProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	student.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// StudentLogout godoc
// POST /api/v1/auth/student/logout
// Releases the student's single-device session.
func (h *AuthHandler) StudentLogout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.ResetStudentSession(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// TeacherForgotPassword godoc
// POST /api/v1/auth/teacher/forgot-password
// Issues a reset token for the teacher account and mails it. Responds 200
// whether or not the address exists, to avoid account enumeration.
func (h *AuthHandler) TeacherForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.teacherService.IssueResetToken(c.Request.Context(), req.Email)
	if err != nil {
		if !service.IsNotFound(err) {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	} else if err := h.mail.SendPasswordReset(c.Request.Context(), req.Email, token); err != nil {
		log.Error().Err(err).Msg("send teacher reset mail")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// StudentForgotPassword godoc
// POST /api/v1/auth/student/forgot-password
// Issues a reset token for the student account and mails it.
func (h *AuthHandler) StudentForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.studentService.IssueResetToken(c.Request.Context(), req.Email)
	if err != nil {
		if !service.IsNotFound(err) {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	} else if err := h.mail.SendPasswordReset(c.Request.Context(), req.Email, token); err != nil {
		log.Error().Err(err).Msg("send student reset mail")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// TeacherResetPassword godoc
// POST /api/v1/auth/teacher/reset-password
// Redeems a reset token and stores the new password.
func (h *AuthHandler) TeacherResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.teacherService.ResetPassword(c.Request.Context(), req.Password, req.Token); err != nil {
		failResetPassword(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// StudentResetPassword godoc
// POST /api/v1/auth/student/reset-password
// Redeems a reset token and stores the new password.
func (h *AuthHandler) StudentResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.ResetPassword(c.Request.Context(), req.Password, req.Token); err != nil {
		failResetPassword(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func failResetPassword(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResetTokenExpired):
		response.Fail(c, http.StatusBadRequest, response.ErrResetTokenExpired)
	case service.IsNotFound(err):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
