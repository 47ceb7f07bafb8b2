// Package validation holds the advisory input checks used by callers before
// they mutate the store. The store itself never runs them.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{10,}$`)
)

// Score bounds, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// IsValidEmail checks the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts digits, +, -, spaces and parentheses, at least 10 characters.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidGrade reports whether score is a number within [0, 100].
func IsValidGrade(score float64) bool {
	return !math.IsNaN(score) && score >= MinScore && score <= MaxScore
}

// IsValidGradeInput parses raw form input before range checking it.
func IsValidGradeInput(raw string) bool {
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false
	}
	return IsValidGrade(score)
}

// New returns a validator with the email_loose, phone and score tags registered.
func New() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

// Register adds the custom tags to an existing validator.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("email_loose", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("score", func(fl validator.FieldLevel) bool {
		return IsValidGrade(fl.Field().Float())
	})
}
