package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
)

// GroupHandler handles group endpoints. All routes sit behind the teacher
// JWT; ownership checks happen in the service.
type GroupHandler struct {
	groupService   *service.GroupService
	studentService *service.StudentService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *service.GroupService, studentService *service.StudentService) *GroupHandler {
	return &GroupHandler{groupService: groupService, studentService: studentService}
}

// List godoc
// GET /api/v1/groups
// Returns the acting teacher's groups.
func (h *GroupHandler) List(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	groups, err := h.groupService.ListForTeacher(c.Request.Context(), acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"groups": groups})
}

// Get godoc
// GET /api/v1/groups/:id
func (h *GroupHandler) Get(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	group, err := h.groupService.Get(c.Request.Context(), id, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"group": group})
}

// Members godoc
// GET /api/v1/groups/:id/students
// Returns the students enrolled in one of the acting teacher's groups.
func (h *GroupHandler) Members(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Ownership check first; the listing itself is unscoped.
	if _, err := h.groupService.Get(c.Request.Context(), id, acting); err != nil {
		failFromService(c, err)
		return
	}

	students, err := h.studentService.ListByGroupID(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// Create godoc
// POST /api/v1/groups
// Opens a group owned by the acting teacher with a generated join token.
func (h *GroupHandler) Create(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	var req model.CreateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), req, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"group": group})
}

// Update godoc
// PATCH /api/v1/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), id, req, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"group": group})
}

// Delete godoc
// DELETE /api/v1/groups/:id
// Member students fall back to a null group.
func (h *GroupHandler) Delete(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id, acting); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
