package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

var errSessionNotFound = errors.New("scenario not found")

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

// respondErr maps err to a status and code.
func respondErr(c *gin.Context, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, status, code, err)
}

func classify(err error) (int, string) {
	var (
		valErr   *domain.ValidationError
		transErr *scenario.InvalidTransitionError
		genErr   *domain.GenerationError
		tlErr    *domain.TranslationError
	)
	switch {
	case errors.As(err, &valErr):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, scenario.ErrBusy):
		return http.StatusConflict, "BUSY"
	case errors.As(err, &transErr):
		return http.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, errSessionNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &genErr):
		return http.StatusBadGateway, "GENERATION_FAILED"
	case errors.As(err, &tlErr):
		return http.StatusBadGateway, "TRANSLATION_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// bindJSON decodes the body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return false
	}
	return true
}
