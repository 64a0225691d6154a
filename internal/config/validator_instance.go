package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(documentKey)

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// A label must carry visible text and fit on one line.
		_ = v.RegisterValidation("step_label", func(fl validator.FieldLevel) bool {
			label := fl.Field().String()
			return strings.TrimSpace(label) != "" && !strings.ContainsAny(label, "\r\n")
		})

		validateInst = v
	})

	return validateInst
}

// documentKey names a field by its yaml key, then its mapstructure key,
// so errors point at what the user wrote.
func documentKey(field reflect.StructField) string {
	for _, tag := range []string{"yaml", "mapstructure"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" {
			return name
		}
	}
	return ""
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
