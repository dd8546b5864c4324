package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/middleware"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
)

// parseIDParam parses the :id path segment. Reports the failure itself and
// returns ok=false so callers can bail with a bare return.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// actingUser rebuilds the authorization view of the authenticated user from
// the validated claims. Reports the failure itself when no claims are set.
func actingUser(c *gin.Context) (model.AuthUser, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return model.AuthUser{}, false
	}
	return middleware.AuthUserFromClaims(claims), true
}

// failFromService maps service and repository sentinels onto the response
// error taxonomy.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		response.Fail(c, http.StatusUnauthorized, response.ErrPermissionDenied)
	case errors.Is(err, service.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, service.ErrWrongPassword):
		response.Fail(c, http.StatusUnauthorized, response.ErrWrongPassword)
	case errors.Is(err, service.ErrInvalidID):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
	case errors.Is(err, service.ErrResetTokenExpired):
		response.Fail(c, http.StatusBadRequest, response.ErrResetTokenExpired)
	case errors.Is(err, service.ErrStudentNotFound):
		response.Fail(c, http.StatusBadRequest, response.ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		response.Fail(c, http.StatusBadRequest, response.ErrDuplicateEmail)
	case errors.Is(err, repository.ErrDuplicateGroupToken):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
