// Package validator wraps the go-playground/validator library,
// validation errors are translated to plain English messages.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

// Validate a value by the "validate" struct tags.
// Maps and slices are validated element by element.
func Validate(value any) error {
	validate, enTranslator := newValidator()
	result := errors.NewMultiError()
	validateValue(validate, enTranslator, reflect.ValueOf(value), result)
	return result.ErrorOrNil()
}

func validateValue(validate *validator.Validate, translator ut.Translator, value reflect.Value, result errors.MultiError) {
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !value.IsNil() {
			validateValue(validate, translator, value.Elem(), result)
		}
	case reflect.Map:
		for _, key := range value.MapKeys() {
			validateValue(validate, translator, value.MapIndex(key), result)
		}
	case reflect.Slice, reflect.Array:
		for i := range value.Len() {
			validateValue(validate, translator, value.Index(i), result)
		}
	case reflect.Struct:
		if err := validate.Struct(value.Interface()); err != nil {
			var validationErrs validator.ValidationErrors
			switch {
			case errors.As(err, &validationErrs):
				result.Append(processValidateError(validationErrs, translator))
			default:
				panic(err)
			}
		}
	default:
		// Scalar values have no validate tags
	}
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	// Register default EN translator
	enLocale := en.New()
	enTranslator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(errors.New("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, enTranslator); err != nil {
		panic(errors.Errorf("translator was not registered: %w", err))
	}

	// Use YAML field name in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return validate, enTranslator
}

// processNamespace removes the struct name (first part) and the field name (last part).
func processNamespace(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) <= 2 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], ".")
}

func processValidateError(err validator.ValidationErrors, translator ut.Translator) error {
	result := errors.NewMultiError()
	for _, e := range err {
		errorFieldName := ""
		// Prefix error message by field namespace
		if namespace := processNamespace(e.Namespace()); namespace != "" {
			errorFieldName = fmt.Sprintf("%s.", namespace)
		}
		result.Append(errors.Errorf("%s%s", errorFieldName, e.Translate(translator)))
	}

	return result.ErrorOrNil()
}
