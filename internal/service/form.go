package service

import (
	"context"
	"strconv"
	"sync"

	"coach-tree-portal/internal/config"
	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/logger"
	"coach-tree-portal/internal/models"
)

// FormState is the state of the create-member form between submit clicks
type FormState string

const (
	StateIdle          FormState = "Idle"
	StateCapacityCheck FormState = "CapacityCheck"
	StateValidating    FormState = "Validating"
	StateSubmitting    FormState = "Submitting"
	StateRejected      FormState = "Rejected"
)

// RejectReason says why a submission ended in StateRejected
type RejectReason string

const (
	ReasonCapacityExceeded RejectReason = "CapacityExceeded"
	ReasonValidationFailed RejectReason = "ValidationFailed"
	ReasonSubmitFailed     RejectReason = "SubmitFailed"
)

// Messages shown to the user after a submission
const (
	SubmitFailedMessage  = "Failed to create member. Please try again."
	SubmitCreatedMessage = "Member created successfully."
	LoadFailedMessage    = "Failed to load members. Please try again."
)

// SubmitResult is the outcome of one submit click
type SubmitResult struct {
	State      FormState         `json:"state" example:"Idle"`
	Reason     RejectReason      `json:"reason,omitempty" example:"ValidationFailed"`
	Created    bool              `json:"created"`
	Message    string            `json:"message,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`

	// Err is the upstream failure behind ReasonSubmitFailed
	Err error `json:"-"`
}

// FormSnapshot is a read-only view of the controller state
type FormSnapshot struct {
	State        FormState         `json:"state"`
	Fields       models.FormFields `json:"fields"`
	Members      []models.Member   `json:"members"`
	MembersCount int               `json:"membersCount"`
	MembersLimit int               `json:"membersLimit"`
	Message      string            `json:"message,omitempty"`
}

// FormController drives the create-member form: capacity check, validation, create, refresh.
// It owns the current form fields and the member list last fetched for the view. Every submission
// re-fetches the list before checking it. Only one submission can be in flight at a time.
type FormController struct {
	client    MembersClientInterface
	validator *MemberValidator
	limit     int

	mu       sync.Mutex
	inFlight bool
	state    FormState
	fields   models.FormFields
	members  []models.Member
	message  string
}

// NewFormController creates a new form controller
func NewFormController(client MembersClientInterface, validator *MemberValidator, cfg *config.Config) *FormController {
	return &FormController{
		client:    client,
		validator: validator,
		limit:     cfg.MembersLimit,
		state:     StateIdle,
		members:   []models.Member{},
	}
}

// Load fetches the member list and caches it
func (fc *FormController) Load(ctx context.Context) error {
	members, err := fc.client.FetchAll(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to load members for form")
		return err
	}

	fc.mu.Lock()
	fc.members = members
	fc.mu.Unlock()
	return nil
}

// SetFields replaces the current form input
func (fc *FormController) SetFields(fields models.FormFields) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.fields = fields
}

// Fields returns the current form input
func (fc *FormController) Fields() models.FormFields {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.fields
}

// State returns the current form state
func (fc *FormController) State() FormState {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.state
}

// Members returns a copy of the cached member list
func (fc *FormController) Members() []models.Member {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := make([]models.Member, len(fc.members))
	copy(out, fc.members)
	return out
}

// Snapshot returns the controller state in one consistent read
func (fc *FormController) Snapshot() FormSnapshot {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	members := make([]models.Member, len(fc.members))
	copy(members, fc.members)
	return FormSnapshot{
		State:        fc.state,
		Fields:       fc.fields,
		Members:      members,
		MembersCount: len(members),
		MembersLimit: fc.limit,
		Message:      fc.message,
	}
}

// Reset clears the form input and returns to Idle unless a submission is in flight
func (fc *FormController) Reset() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.inFlight {
		return
	}
	fc.fields = models.FormFields{}
	fc.state = StateIdle
	fc.message = ""
}

// ValidateFields runs the field rules on fields against the last loaded members without submitting
func (fc *FormController) ValidateFields(fields models.FormFields) *ValidationResult {
	return fc.validator.ValidateFields(fields, fc.Members())
}

// Submit submits the current form input
func (fc *FormController) Submit(ctx context.Context) (*SubmitResult, error) {
	return fc.submit(ctx, nil)
}

// SubmitFields replaces the form input with fields and submits it
func (fc *FormController) SubmitFields(ctx context.Context, fields models.FormFields) (*SubmitResult, error) {
	return fc.submit(ctx, &fields)
}

func (fc *FormController) submit(ctx context.Context, fields *models.FormFields) (*SubmitResult, error) {
	log := logger.WithContext(ctx)

	fc.mu.Lock()
	if fc.inFlight {
		fc.mu.Unlock()
		return nil, apperrors.ErrSubmissionInProgress
	}
	fc.inFlight = true
	if fields != nil {
		fc.fields = *fields
	}
	input := fc.fields
	fc.state = StateCapacityCheck
	fc.mu.Unlock()

	defer func() {
		fc.mu.Lock()
		fc.inFlight = false
		fc.mu.Unlock()
	}()

	members, err := fc.client.FetchAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load members before submit")
		fc.mu.Lock()
		fc.state = StateRejected
		fc.message = LoadFailedMessage
		fc.mu.Unlock()
		return &SubmitResult{
			State:   StateRejected,
			Reason:  ReasonSubmitFailed,
			Message: LoadFailedMessage,
			Err:     err,
		}, nil
	}

	fc.mu.Lock()
	fc.members = members
	result := fc.validator.Validate(input, members, fc.limit)
	if result.CapacityExceeded {
		fc.state = StateRejected
		fc.message = result.Message
		fc.mu.Unlock()
		log.WithField("limit", fc.limit).Info("Member submission rejected: capacity reached")
		return &SubmitResult{
			State:      StateRejected,
			Reason:     ReasonCapacityExceeded,
			Message:    result.Message,
			Validation: result,
		}, nil
	}

	fc.state = StateValidating
	if !result.Valid() {
		fc.state = StateRejected
		fc.message = ""
		fc.mu.Unlock()
		log.WithField("errors", result.Count()).Debug("Member submission rejected: validation failed")
		return &SubmitResult{
			State:      StateRejected,
			Reason:     ReasonValidationFailed,
			Validation: result,
		}, nil
	}

	fc.state = StateSubmitting
	fc.mu.Unlock()

	if err := fc.client.CreateOne(ctx, buildCreatePayload(input)); err != nil {
		log.WithError(err).Error("Failed to create member")
		fc.mu.Lock()
		fc.state = StateRejected
		fc.message = SubmitFailedMessage
		fc.mu.Unlock()
		return &SubmitResult{
			State:      StateRejected,
			Reason:     ReasonSubmitFailed,
			Message:    SubmitFailedMessage,
			Validation: result,
			Err:        err,
		}, nil
	}

	refreshed, refreshErr := fc.client.FetchAll(ctx)
	if refreshErr != nil {
		log.WithError(refreshErr).Warn("Member created but refreshing the member list failed")
	}

	fc.mu.Lock()
	fc.state = StateIdle
	fc.fields = models.FormFields{}
	fc.message = SubmitCreatedMessage
	if refreshErr == nil {
		fc.members = refreshed
	}
	fc.mu.Unlock()

	log.Info("Member created")
	return &SubmitResult{
		State:      StateIdle,
		Created:    true,
		Message:    SubmitCreatedMessage,
		Validation: result,
	}, nil
}

func buildCreatePayload(fields models.FormFields) models.CreateMemberRequest {
	normalized := fields.Normalized()
	parentID, _ := strconv.Atoi(normalized.CoachSelect)
	return models.CreateMemberRequest{
		ParentID: parentID,
		FullName: normalized.Name,
		Email:    normalized.Email,
	}
}
