package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
)

// AvatarHandler handles avatar upload endpoints.
type AvatarHandler struct {
	mediaService *service.MediaService
}

// NewAvatarHandler creates a new AvatarHandler.
func NewAvatarHandler(mediaService *service.MediaService) *AvatarHandler {
	return &AvatarHandler{mediaService: mediaService}
}

// Upload godoc
// POST /api/v1/avatars
// Uploads an avatar image. The returned payload is passed back in a profile
// update to attach it.
func (h *AvatarHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	avatar, err := h.mediaService.SaveAvatar(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"avatar": avatar})
}
