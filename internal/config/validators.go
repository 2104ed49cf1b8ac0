package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It registers both the validation logic and a human-readable error message,
// and names fields by their label tag in every message.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with {1}",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(labelFromTag)

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// The parameter is the label of the sibling field, e.g. exclusive=--secret-file.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := siblingByLabel(reflect.Indirect(fl.Parent()), fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || other.Kind() != reflect.String {
		return true
	}

	return field.String() == "" || other.String() == ""
}

// siblingByLabel returns the field of parent whose label is label,
// or the zero Value when there is none.
func siblingByLabel(parent reflect.Value, label string) reflect.Value {
	if parent.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	for i := range parent.NumField() {
		if labelFromTag(parent.Type().Field(i)) == label {
			return parent.Field(i)
		}
	}

	return reflect.Value{}
}

func labelFromTag(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}
