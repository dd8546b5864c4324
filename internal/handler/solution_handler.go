package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
)

// SolutionHandler handles solution submission endpoints.
type SolutionHandler struct {
	solutionService *service.SolutionService
}

// NewSolutionHandler creates a new SolutionHandler.
func NewSolutionHandler(solutionService *service.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

// Create godoc
// POST /api/v1/solutions
// Submits a solution as the acting student.
func (h *SolutionHandler) Create(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	var req model.CreateSolutionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	solution, err := h.solutionService.Create(c.Request.Context(), req, acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"solution": solution})
}

// Get godoc
// GET /api/v1/solutions/:id
func (h *SolutionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	solution, err := h.solutionService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"solution": solution})
}

// ListMine godoc
// GET /api/v1/solutions
// Returns the acting student's submissions.
func (h *SolutionHandler) ListMine(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		return
	}

	solutions, err := h.solutionService.ListMine(c.Request.Context(), acting)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"solutions": solutions})
}
