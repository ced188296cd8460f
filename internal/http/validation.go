package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
)

var setupValidator sync.Once

// configureValidator makes validation errors report the json name of a field
// instead of the Go one, and validates nullable fields by their value.
func configureValidator() {
	setupValidator.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(nullableValue[string], nullable.Nullable[string]{})
		v.RegisterCustomTypeFunc(nullableValue[int], nullable.Nullable[int]{})
	})
}

// nullableValue hands the validator a pointer to the wrapped value, or nil
// when the field was left out or sent as null so omitempty skips it. The
// pointer keeps zero values subject to rules like min, as with *T fields.
func nullableValue[T any](field reflect.Value) any {
	n, ok := field.Interface().(nullable.Nullable[T])
	if !ok || !n.IsSpecified() || n.IsNull() {
		return nil
	}
	value := n.MustGet()
	return &value
}

// bindJSON decodes and validates the request body into obj, responding with
// 422 on failure. When allowEmpty is set a missing body leaves obj untouched.
func bindJSON(c *gin.Context, obj any, allowEmpty bool) bool {
	configureValidator()

	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) && allowEmpty {
		return true
	}

	respondValidation(c, issuesFrom(err)...)
	return false
}

// issuesFrom turns decode and validator errors into client-facing issues.
func issuesFrom(err error) []Issue {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		issues := make([]Issue, 0, len(validationErrs))
		for _, fe := range validationErrs {
			issues = append(issues, Issue{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: describe(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []Issue{{Field: field, Rule: "type", Message: fmt.Sprintf("%s must be of type %s", field, typeErr.Type)}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []Issue{{Field: "body", Rule: "json", Message: "Request body is not valid JSON"}}
	}

	if errors.Is(err, io.EOF) {
		return []Issue{{Field: "body", Rule: "required", Message: "Request body is required"}}
	}

	return []Issue{{Field: "body", Rule: "invalid", Message: err.Error()}}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
