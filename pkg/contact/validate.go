package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// emailPattern is local@domain.tld where no part holds "@" or whitespace.
// RE2's \s is ASCII only, so vertical tab, Unicode separators and the BOM
// are listed explicitly.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

func isSpace(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }

func trim(s string) string { return strings.TrimFunc(s, isSpace) }

// submission is the view of a Draft the validator checks.
// Values are trimmed before they get here.
type submission struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,contact_email"`
	Message string `form:"message" validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func rules() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(sf reflect.StructField) string {
			return sf.Tag.Get("form")
		})
		_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate decides whether d can be submitted.
// It returns nil when the draft is acceptable and a *ValidationError otherwise.
// Missing required fields are always reported before a malformed email.
func Validate(d Draft) error {
	err := rules().Struct(submission{
		Name:    trim(d.Name),
		Email:   trim(d.Email),
		Message: trim(d.Message),
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable on a programming error in submission.
		return &ValidationError{Err: ErrMissingRequired}
	}

	var invalid *ValidationError
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		if fe.Tag() == "required" {
			return &ValidationError{Err: ErrMissingRequired, Field: field}
		}
		if invalid == nil {
			invalid = &ValidationError{Err: ErrInvalidEmail, Field: field}
		}
	}
	return invalid
}
