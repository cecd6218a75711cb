// Package forms holds the submit-time DTOs for the console's modal forms and
// validates them before anything is sent to the backend. Validation failures
// come back as a single coded error with per-field detail messages so the UI
// layer can attach them to inputs.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/helixcrm/console/pkg/errors"
	"github.com/helixcrm/console/pkg/security"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// EmployeeForm backs both the create and edit modals. Optional contact fields
// are free-form; role must be one of the console roles.
type EmployeeForm struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Telephone string `json:"telephone" validate:"max=40"`
	Position  string `json:"position" validate:"max=100"`
	Role      string `json:"role" validate:"required,oneof=admin co_admin management accounting staff"`
	TimeZone  string `json:"timeZone" validate:"max=64"`
	Telegram  string `json:"telegram" validate:"max=100"`
	WhatsApp  string `json:"whatsApp" validate:"max=40"`
}

// SignInForm backs the authentication screen.
type SignInForm struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// PasswordChangeForm backs the password-change modal. Beyond the struct tags
// it enforces the local strength gate and the confirmation match, both checked
// before any network call.
type PasswordChangeForm struct {
	Password     string `json:"password" validate:"required"`
	Confirmation string `json:"confirmation" validate:"required"`
}

// DeclineLeadForm carries the mandatory reason for moving a lead to declined.
type DeclineLeadForm struct {
	Reason string `json:"reason" validate:"required,min=10,max=500"`
}

// Validate runs struct-tag validation on any form DTO.
func Validate(form any) error {
	if err := validate.Struct(form); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// Validate checks the password form: tag validation first, then the strength
// gate (length >= 8 and score >= 40) and the confirmation match.
func (f PasswordChangeForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return formatValidationErrors(err)
	}
	details := map[string]string{}
	strength := security.EvaluateStrength(f.Password)
	if !strength.AcceptableForSubmission() {
		details["password"] = "is too weak"
	}
	if f.Confirmation != f.Password {
		details["confirmation"] = "does not match password"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	}
	return "is invalid"
}
