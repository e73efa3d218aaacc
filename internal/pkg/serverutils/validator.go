package serverutils

import (
	"errors"
	"strings"

	"autovitrine-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct validation and converts failures into a
// validation error listing the offending JSON-ish field names.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		var fields []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields = append(fields, lowerFirst(fieldErr.Field()))
		}
		return apperror.NewValidation("invalid request payload", fields...)
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
