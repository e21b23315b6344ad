package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps a service error onto the HTTP status the UI sees
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidMemberID), errors.Is(err, apperrors.ErrEmptyUpdate):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTreeCycle),
		errors.Is(err, apperrors.ErrMemberHasChildren),
		errors.Is(err, apperrors.ErrSubmissionInProgress),
		apperrors.IsCapacityExceeded(err):
		return http.StatusConflict
	case apperrors.IsNotFound(err), apperrors.StatusCode(err) == http.StatusNotFound:
		return http.StatusNotFound
	case apperrors.IsValidation(err):
		return http.StatusUnprocessableEntity
	case apperrors.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch {
	case status == http.StatusNotFound && !apperrors.IsNotFound(err):
		msg = apperrors.ErrMemberNotFound.Error()
	case status == http.StatusBadGateway:
		msg = "Members API request failed"
	case status == http.StatusInternalServerError:
		msg = "Internal server error"
	}

	log := logger.WithContext(c.Request.Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed")
	} else {
		log.Debug("Request rejected")
	}

	c.JSON(status, ErrorResponse{Error: msg})
}

func parseMemberID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidMemberID
	}
	return id, nil
}
