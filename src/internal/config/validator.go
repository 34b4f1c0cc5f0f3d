package config

import (
	"errors"
	"net/url"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("source_url", validateSourceURL); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	if err := validate.Struct(c.Log); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "log")...)
	}

	if c.General.Input != "" {
		validationErrors = append(validationErrors, checkFileExists("general.input", c.General.Input)...)
	}

	// The whitelist file is only read in substring mode.
	if c.General.Whitelist != "" && c.General.WhitelistMode == WhitelistSubstring {
		validationErrors = append(validationErrors, checkFileExists("general.whitelist", c.General.Whitelist)...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func checkFileExists(fieldPath, path string) ValidationErrors {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ValidationErrors{{
			FieldPath: fieldPath,
			Message:   "file does not exist: " + path,
		}}
	}
	return nil
}

// Custom validator: absolute http(s) URL
func validateSourceURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
