package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/go-playground/validator/v10"
)

// UserRequestValidator validates the request bodies accepted by the
// authentication endpoints: [models.Credentials] and
// [models.RegistrationRequest].
type UserRequestValidator struct {
	validate *validator.Validate
}

// NewUserRequestValidator constructs a [Validator] backed by
// go-playground/validator, reporting fields by their JSON names.
func NewUserRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &UserRequestValidator{validate: validate}
}

// Validate implements [Validator]. When fields are given, only those JSON
// fields are checked. Failures wrap [ErrInvalidRequest] and name each
// offending field; submitted values are never echoed.
func (v *UserRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateStruct(ctx, &value, fields...)
	case *models.Credentials:
		return v.validateStruct(ctx, value, fields...)
	case models.RegistrationRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.RegistrationRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserRequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if reflect.ValueOf(obj).IsNil() {
		return fmt.Errorf("%w: nil %T", ErrInvalidRequest, obj)
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		structFields, fieldErr := structFieldNames(obj, fields)
		if fieldErr != nil {
			return fieldErr
		}
		err = v.validate.StructPartialCtx(ctx, obj, structFields...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Field()+" "+describe(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(messages, "; "))
}

// structFieldNames maps JSON field names onto Go field names, which is what
// StructPartial expects.
func structFieldNames(obj any, jsonFields []string) ([]string, error) {
	t := reflect.TypeOf(obj).Elem()

	result := make([]string, 0, len(jsonFields))
	for _, jsonField := range jsonFields {
		found := false
		for i := range t.NumField() {
			f := t.Field(i)
			if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == jsonField {
				result = append(result, f.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, jsonField)
		}
	}

	return result, nil
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + e.Param() + " characters"
	default:
		return "is invalid"
	}
}
