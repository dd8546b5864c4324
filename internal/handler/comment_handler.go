package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/middleware"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
)

// CommentHandler handles comment endpoints. The same handler serves both
// roles; the author side is taken from the token type.
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListBySolution godoc
// GET /api/v1/solutions/:id/comments
func (h *CommentHandler) ListBySolution(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListBySolutionID(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

// Create godoc
// POST /api/v1/comments
// Attaches a comment to a solution as the authenticated teacher or student.
func (h *CommentHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateCommentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), req, middleware.AuthUserFromClaims(claims), claims.TokenType)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}
