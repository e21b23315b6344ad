package service

import (
	_ "embed"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/logger"
	"coach-tree-portal/internal/models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed validation_messages.yaml
var validationCatalogYAML []byte

// Form field names as reported in FieldError.Field
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldCoachSelect = "coachSelect"
)

var fieldOrder = []string{FieldName, FieldEmail, FieldCoachSelect}

// memberSubmission is what the rule set runs on. Validator stops at the first failing tag of
// each field, so tag order is rule order.
type memberSubmission struct {
	Name        string `json:"name" validate:"required,min=3,max=64,alpha_spaces,capitalized_words,max_words=4,unique_name"`
	Email       string `json:"email" validate:"email,name_email"`
	CoachSelect string `json:"coachSelect" validate:"required,coach_exists"`

	members []models.Member
}

// FieldError is one failed rule on one form field
type FieldError struct {
	Field   string                   `json:"field" example:"name"`
	Code    apperrors.FieldErrorCode `json:"code" example:"FieldRequired"`
	Message string                   `json:"message" example:"The name field is required"`
}

// ValidationResult aggregates the outcome of validating a form submission
type ValidationResult struct {
	CapacityExceeded bool         `json:"capacityExceeded"`
	Limit            int          `json:"limit,omitempty"`
	Message          string       `json:"message,omitempty"`
	Errors           []FieldError `json:"errors"`
}

// Valid reports whether the submission may proceed
func (r *ValidationResult) Valid() bool {
	return !r.CapacityExceeded && len(r.Errors) == 0
}

// Count returns the number of field errors
func (r *ValidationResult) Count() int {
	return len(r.Errors)
}

// Has reports whether field has at least one error
func (r *ValidationResult) Has(field string) bool {
	_, ok := r.First(field)
	return ok
}

// First returns the first error recorded for field
func (r *ValidationResult) First(field string) (FieldError, bool) {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Items returns the field errors in report order
func (r *ValidationResult) Items() []FieldError {
	out := make([]FieldError, len(r.Errors))
	copy(out, r.Errors)
	return out
}

// Messages returns the field error messages in report order
func (r *ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

// Err converts the result into an error, or nil when valid
func (r *ValidationResult) Err() error {
	if r.CapacityExceeded {
		return apperrors.NewCapacityExceededError(r.Limit)
	}
	if len(r.Errors) == 0 {
		return nil
	}
	first := r.Errors[0]
	return apperrors.NewValidationError(first.Field, first.Code, first.Message)
}

type catalogRule struct {
	Tag     string   `yaml:"tag"`
	Code    string   `yaml:"code"`
	Message string   `yaml:"message"`
	Params  []string `yaml:"params"`
}

type validationCatalog struct {
	Locale string        `yaml:"locale"`
	Rules  []catalogRule `yaml:"rules"`
}

// MemberValidator applies the create-member rule set
type MemberValidator struct {
	validate *validator.Validate
	trans    ut.Translator
	codes    map[string]apperrors.FieldErrorCode
}

// NewMemberValidator registers the member form rules and messages on v
func NewMemberValidator(v *validator.Validate) (*MemberValidator, error) {
	var catalog validationCatalog
	if err := yaml.Unmarshal(validationCatalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse validation catalog: %w", err)
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, found := uni.GetTranslator(catalog.Locale)
	if !found {
		return nil, fmt.Errorf("no translator for locale %q", catalog.Locale)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	customRules := map[string]validator.Func{
		"alpha_spaces":      isAlphaSpaces,
		"capitalized_words": hasCapitalizedWords,
		"max_words":         hasMaxWords,
		"unique_name":       isUniqueName,
		"name_email":        matchesNameEmail,
		"coach_exists":      coachExists,
	}
	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register rule %s: %w", tag, err)
		}
	}

	mv := &MemberValidator{
		validate: v,
		trans:    trans,
		codes:    make(map[string]apperrors.FieldErrorCode, len(catalog.Rules)),
	}

	for _, rule := range catalog.Rules {
		rule := rule
		mv.codes[rule.Tag] = apperrors.FieldErrorCode(rule.Code)
		err := v.RegisterTranslation(rule.Tag, trans,
			func(t ut.Translator) error {
				return t.Add(rule.Tag, rule.Message, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, err := t.T(fe.Tag(), messageParams(rule.Params, fe)...)
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to register message for %s: %w", rule.Tag, err)
		}
	}

	return mv, nil
}

func messageParams(kinds []string, fe validator.FieldError) []string {
	params := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case "field":
			params = append(params, fe.Field())
		case "param":
			params = append(params, fe.Param())
		case "value":
			params = append(params, fmt.Sprint(fe.Value()))
		}
	}
	return params
}

// Validate runs the capacity rule and, when it passes, the field rules.
// limit <= 0 disables the capacity rule.
func (mv *MemberValidator) Validate(fields models.FormFields, members []models.Member, limit int) *ValidationResult {
	if err := CheckCapacity(len(members), limit); err != nil {
		return &ValidationResult{
			CapacityExceeded: true,
			Limit:            limit,
			Message:          err.Error(),
			Errors:           []FieldError{},
		}
	}
	return mv.ValidateFields(fields, members)
}

// ValidateFields runs only the field rules
func (mv *MemberValidator) ValidateFields(fields models.FormFields, members []models.Member) *ValidationResult {
	normalized := fields.Normalized()
	sub := &memberSubmission{
		Name:        normalized.Name,
		Email:       normalized.Email,
		CoachSelect: normalized.CoachSelect,
		members:     members,
	}

	result := &ValidationResult{Errors: []FieldError{}}

	err := mv.validate.Struct(sub)
	if err == nil {
		return result
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		logger.New().WithError(err).Error("Unexpected validator failure")
		result.Errors = append(result.Errors, FieldError{Field: FieldName, Code: apperrors.FieldRequired, Message: "The form could not be validated"})
		return result
	}

	for _, fe := range verrs {
		result.Errors = append(result.Errors, FieldError{
			Field:   fe.Field(),
			Code:    mv.codes[fe.Tag()],
			Message: fe.Translate(mv.trans),
		})
	}

	slices.SortStableFunc(result.Errors, func(a, b FieldError) int {
		return slices.Index(fieldOrder, a.Field) - slices.Index(fieldOrder, b.Field)
	})

	return result
}

// ValidateProfile runs the name and email rules for an edit of member self. Its own current name
// does not count as a duplicate.
func (mv *MemberValidator) ValidateProfile(self int, name, email string, members []models.Member) *ValidationResult {
	others := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m.ID != self {
			others = append(others, m)
		}
	}
	fields := models.FormFields{Name: name, Email: email, CoachSelect: strconv.Itoa(models.RootParentID)}
	return mv.ValidateFields(fields, others)
}

// CheckCapacity rejects a new member once count has reached limit
func CheckCapacity(count, limit int) error {
	if limit > 0 && count >= limit {
		return apperrors.NewCapacityExceededError(limit)
	}
	return nil
}

// ExpectedEmailLocalPart derives the email local part from a full name:
// "Vardas Pavardenis" gives "vardas.pavardenis".
func ExpectedEmailLocalPart(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "."))
}

func submissionOf(fl validator.FieldLevel) *memberSubmission {
	top := fl.Top()
	if !top.IsValid() || !top.CanInterface() {
		return nil
	}
	switch s := top.Interface().(type) {
	case *memberSubmission:
		return s
	case memberSubmission:
		return &s
	}
	return nil
}

func isAlphaSpaces(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r != ' ' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasCapitalizedWords(fl validator.FieldLevel) bool {
	for _, word := range strings.Fields(fl.Field().String()) {
		first := []rune(word)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

func hasMaxWords(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.Fields(fl.Field().String())) <= limit
}

func isUniqueName(fl validator.FieldLevel) bool {
	sub := submissionOf(fl)
	if sub == nil {
		return true
	}
	name := fl.Field().String()
	for _, m := range sub.members {
		if m.FullName == name {
			return false
		}
	}
	return true
}

func matchesNameEmail(fl validator.FieldLevel) bool {
	sub := submissionOf(fl)
	if sub == nil {
		return false
	}
	email := fl.Field().String()
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}
	expected := ExpectedEmailLocalPart(sub.Name)
	if expected == "" {
		return false
	}
	return strings.EqualFold(email[:at], expected)
}

func coachExists(fl validator.FieldLevel) bool {
	id, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	if id == models.RootParentID {
		return true
	}
	sub := submissionOf(fl)
	if sub == nil {
		return false
	}
	_, ok := models.FindByID(sub.members, id)
	return ok
}
