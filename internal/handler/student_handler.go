package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
)

// StudentHandler handles student account endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Register godoc
// POST /api/v1/students
// Public self-registration. The group token enrolls the student into its
// group.
func (h *StudentHandler) Register(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), req)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// Get godoc
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	student.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Update godoc
// PATCH /api/v1/students/:id
// Self only. Applies an allow-listed partial profile update.
func (h *StudentHandler) Update(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, req, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	student.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// UpdatePassword godoc
// PUT /api/v1/students/password
// Replaces the acting student's password after verifying the old one.
func (h *StudentHandler) UpdatePassword(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	var req model.UpdatePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.UpdatePassword(c.Request.Context(), req, acting); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Delete godoc
// DELETE /api/v1/students/:id
// Mentor only. Removes a student from the platform.
func (h *StudentHandler) Delete(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id, acting); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// ListGroupMembers godoc
// GET /api/v1/students/group
// Returns the members of the acting student's group.
func (h *StudentHandler) ListGroupMembers(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	students, err := h.studentService.ListByGroupID(c.Request.Context(), acting.GroupID)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}
