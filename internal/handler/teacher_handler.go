package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
)

// TeacherHandler handles teacher account endpoints.
type TeacherHandler struct {
	teacherService *service.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// List godoc
// GET /api/v1/teachers?page=1&limit=10
// Returns a page of teachers decorated with group and student counts.
func (h *TeacherHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	teachers, pg, err := h.teacherService.List(c.Request.Context(), page, limit)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"teachers": teachers}, pg)
}

// Get godoc
// GET /api/v1/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	teacher, err := h.teacherService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	teacher.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// Create godoc
// POST /api/v1/teachers
// Admin only. Registers a new teacher account.
func (h *TeacherHandler) Create(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.Create(c.Request.Context(), req, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// Update godoc
// PATCH /api/v1/teachers/:id
// Self or admin. Applies an allow-listed partial profile update.
func (h *TeacherHandler) Update(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.Update(c.Request.Context(), id, req, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	teacher.PasswordHash = ""
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// UpdatePassword godoc
// PUT /api/v1/teachers/password
// Replaces the acting teacher's password after verifying the old one.
func (h *TeacherHandler) UpdatePassword(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	var req model.UpdatePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.teacherService.UpdatePassword(c.Request.Context(), req, acting); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// AdminSetPassword godoc
// PUT /api/v1/teachers/:id/password
// Admin only. Replaces another teacher's password.
func (h *TeacherHandler) AdminSetPassword(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.AdminSetPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.teacherService.AdminSetPassword(c.Request.Context(), id, req.NewPassword, acting); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Delete godoc
// DELETE /api/v1/teachers/:id
// Admin only. Owned groups fall back to a null owner.
func (h *TeacherHandler) Delete(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.teacherService.Delete(c.Request.Context(), id, acting); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
