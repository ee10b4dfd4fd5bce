package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate  *validator.Validate
	tenDigits = regexp.MustCompile(`^[0-9]{10}$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name[:1]) + f.Name[1:]
		}
		return name
	})
	if err := validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return tenDigits.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// FieldViolation is one failed rule on one field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError carries every violation found on a record.
type ValidationError struct {
	Entity     string           `json:"entity"`
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// Has reports whether field failed at least one rule.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func newValidationError(entity string, violations []FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Violations: violations}
}

func checkStruct(v interface{}) []FieldViolation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []FieldViolation{{Rule: "invalid", Message: err.Error()}}
	}
	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: ruleMessage(fe.Tag(), fe.Param()),
		})
	}
	return violations
}

func ruleMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param + " characters"
	case "max":
		return "must be at most " + param + " characters"
	case "email":
		return "must be a valid email address"
	case "phone10":
		return "must be exactly 10 digits"
	default:
		return "failed rule " + rule
	}
}
