// internal/app/system/inputval/validate.go
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the validation errors for one input struct.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message, or "" when validation passed.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every error message with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the string fields of a struct against its `validate` tags.
//
// Supported rules: required, max=N, email, httpurl, role, pricing,
// coachingstyle, visibility, outcome. Optional fields (no "required") skip
// the format rules when blank. The `label` tag names the field in messages.
func Validate(input any) *Result {
	result := &Result{}

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || field.Type.Kind() != reflect.String {
			continue
		}

		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}

		value := strings.TrimSpace(v.Field(i).String())
		rules := strings.Split(tag, ",")

		required := false
		for _, rule := range rules {
			if rule == "required" {
				required = true
			}
		}

		if value == "" {
			if required {
				result.add(field.Name, label+" is required.")
			}
			continue
		}

		for _, rule := range rules {
			switch {
			case rule == "required":
				// handled above
			case strings.HasPrefix(rule, "max="):
				n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
				if err == nil && len(value) > n {
					result.add(field.Name,
						fmt.Sprintf("%s must be at most %d characters.", label, n))
				}
			case rule == "email":
				if !IsValidEmail(value) {
					result.add(field.Name, "A valid email address is required.")
				}
			case rule == "httpurl":
				if !IsValidHTTPURL(value) {
					result.add(field.Name, label+" must be a valid http(s) URL.")
				}
			case rule == "role":
				if !IsValidRole(value) {
					result.add(field.Name, label+" must be \"founder\" or \"mentor\".")
				}
			case rule == "pricing":
				if !IsValidPricingModel(value) {
					result.add(field.Name, label+" must be one of Pro Bono, Paid, Equity.")
				}
			case rule == "coachingstyle":
				if !IsValidCoachingStyle(value) {
					result.add(field.Name, label+" is not a recognized coaching style.")
				}
			case rule == "visibility":
				if !IsValidVisibility(value) {
					result.add(field.Name, label+" must be \"public\" or \"private\".")
				}
			case rule == "outcome":
				if !IsValidOutcome(value) {
					result.add(field.Name, label+" must be one of Exited, Active, Failed, Acquired.")
				}
			}
		}
	}

	return result
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}
