package template

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	forgeerrors "github.com/cardforge/cardforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	idPattern       = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator used across
// the template package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_color6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("fill_color", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == TransparentFill || hexColorPattern.MatchString(s)
		})

		_ = v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
			return idPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("layer_id", func(fl validator.FieldLevel) bool {
			return idPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a template.
func Validate(t *CardTemplate) error {
	if t == nil {
		return forgeerrors.NewValidationError("template", "template is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(t); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(t.Layers))
	for i, layer := range t.Layers {
		if prev, exists := seen[layer.ID]; exists {
			return forgeerrors.NewValidationError(
				fmt.Sprintf("layers[%d].id", i),
				fmt.Sprintf("duplicate layer id %q (first used at index %d)", layer.ID, prev),
				nil,
			)
		}
		seen[layer.ID] = i
	}

	if t.Background.Type == BackgroundGradient && t.Background.Color2 == "" {
		return forgeerrors.NewValidationError("background.color2", "gradient background requires color2", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return forgeerrors.NewValidationError("template", invalid.Error(), err)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		field := normalizeFieldPath(first.Namespace())
		message := fmt.Sprintf("failed %q rule", first.Tag())
		return forgeerrors.NewValidationError(field, message, err)
	}

	return forgeerrors.NewValidationError("template", err.Error(), err)
}

// normalizeFieldPath strips the root struct name and lower-cases the path so
// errors reference document keys, not Go field names.
func normalizeFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
