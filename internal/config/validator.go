package config

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	blockerrors "github.com/blockkit/delimiter/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("delimiter_style", func(fl validator.FieldLevel) bool {
			return slices.Contains(SupportedStyles, Style(fl.Field().String()))
		})

		_ = v.RegisterValidation("supported_width", func(fl validator.FieldLevel) bool {
			return slices.Contains(SupportedLineWidths, int(fl.Field().Int()))
		})

		_ = v.RegisterValidation("supported_thickness", func(fl validator.FieldLevel) bool {
			return slices.Contains(SupportedLineThickness, int(fl.Field().Int()))
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs strict schema validation on a configuration. It is
// meant for hosts that want to fail fast on typos in config files; the tool
// itself tolerates any configuration by resolving through Resolve.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return blockerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return blockerrors.NewValidationError(field, msg, err)
	}

	return blockerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
