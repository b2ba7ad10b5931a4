package validation

import (
	"ttb/internal/domain"
)

// SessionValidator provides validation for session start parameters and
// catalog additions.
type SessionValidator struct {
	validator *Validator
}

// NewSessionValidator creates a new session validator
func NewSessionValidator() *SessionValidator {
	return &SessionValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectName validates a project name for catalog addition or session start
func (sv *SessionValidator) ValidateProjectName(name string) error {
	validationError := NewValidationError()

	trimmedName := sv.validator.TrimAndValidateString(name)

	if !sv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("project")
		return validationError
	}

	if !sv.validator.IsValidProjectNameLength(trimmedName) {
		validationError.AddInvalidValueError("project", trimmedName, "name is too long")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRate validates a per-day rate value
func (sv *SessionValidator) ValidateRate(rate float64) error {
	if !sv.validator.IsValidRate(rate) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("rate", rate, "must be positive")
		return validationError
	}
	return nil
}

// ValidateCurrency validates a currency code against the supported set
func (sv *SessionValidator) ValidateCurrency(currency domain.Currency) error {
	if !currency.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("currency", string(currency), "unsupported currency code")
		return validationError
	}
	return nil
}

// ValidateSessionStart validates the parameters required to start a session
func (sv *SessionValidator) ValidateSessionStart(project string, rate float64, currency domain.Currency) error {
	validationError := NewValidationError()

	if nameErr := sv.ValidateProjectName(project); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if rateErr := sv.ValidateRate(rate); rateErr != nil {
		if rateValidationErr, ok := rateErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, rateValidationErr.Errors...)
		}
	}

	if curErr := sv.ValidateCurrency(currency); curErr != nil {
		if curValidationErr, ok := curErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, curValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidProjectName returns a cleaned project name if valid
func (sv *SessionValidator) GetValidProjectName(name string) (string, error) {
	if err := sv.ValidateProjectName(name); err != nil {
		return "", err
	}
	return sv.validator.TrimAndValidateString(name), nil
}
