package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/fraud-shield/models"
)

// Field name constants restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldGameID   = "gameId"
	FieldScore    = "score"
)

// MaxScore is the largest score a single game completion may report.
// It keeps floor(score/2) and the running coin balance well inside int64.
const MaxScore = 1_000_000

// RequestValidator implements [Validator] for the API request bodies:
// SignupRequest, LoginRequest and GameCompletion, as values or pointers.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When no fields are given
// every field of the type is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSignup(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLogin(*value, fields...)
	case models.GameCompletion:
		return v.validateGameCompletion(value, fields...)
	case *models.GameCompletion:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateGameCompletion(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignup(request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(request.Username) {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateGameCompletion(request models.GameCompletion, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGameID, FieldScore}
	}

	for _, f := range fields {
		switch f {
		case FieldGameID:
			if isBlank(request.GameID) {
				return ErrEmptyGameID
			}
		case FieldScore:
			if request.Score == nil {
				return ErrMissingScore
			}
			score := *request.Score
			if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 || score > MaxScore {
				return ErrInvalidScore
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
