package handlers

import (
	"net/http"

	"coach-tree-portal/internal/models"
	"coach-tree-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// FormHandler serves the create-member form
type FormHandler struct {
	form service.FormControllerInterface
}

// NewFormHandler creates a new form handler
func NewFormHandler(form service.FormControllerInterface) *FormHandler {
	return &FormHandler{
		form: form,
	}
}

// GetForm reloads the member list and returns the current form state
// @Summary Get form state
// @Description Fetch the member list, then return the form fields, state, member list used for the coach select, and the member limit
// @Tags form
// @Accept json
// @Produce json
// @Success 200 {object} service.FormSnapshot "Current form state"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /form [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	if err := h.form.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.form.Snapshot())
}

// Submit validates and creates a member
// @Summary Submit form
// @Description Fetch the member list, run the capacity check and the field rules against it, then create the member and refresh the list.
// @Tags form
// @Accept json
// @Produce json
// @Param fields body models.FormFields true "Form fields"
// @Success 201 {object} service.SubmitResult "Member created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} service.SubmitResult "Member limit reached or a submission is in progress"
// @Failure 422 {object} service.SubmitResult "Field validation failed"
// @Failure 502 {object} service.SubmitResult "Members API could not be read or rejected the create"
// @Router /form/submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	var fields models.FormFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.form.SubmitFields(c.Request.Context(), fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(submitStatus(result), result)
}

func submitStatus(result *service.SubmitResult) int {
	if result.Created {
		return http.StatusCreated
	}
	switch result.Reason {
	case service.ReasonCapacityExceeded:
		return http.StatusConflict
	case service.ReasonValidationFailed:
		return http.StatusUnprocessableEntity
	case service.ReasonSubmitFailed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

// Validate runs the field rules without submitting
// @Summary Validate form fields
// @Description Fetch the member list and run the field rules against it. The member limit is not checked and nothing is created.
// @Tags form
// @Accept json
// @Produce json
// @Param fields body models.FormFields true "Form fields"
// @Success 200 {object} service.ValidationResult "Validation outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /form/validate [post]
func (h *FormHandler) Validate(c *gin.Context) {
	var fields models.FormFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.form.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.form.ValidateFields(fields))
}
