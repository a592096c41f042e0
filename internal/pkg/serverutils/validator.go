package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"scholarship-fund-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds violations into a
// single ValidationError message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apperror.Validation("invalid request payload")
	}

	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", strings.ToLower(v.Field()), v.Tag()))
	}
	return apperror.Validation(strings.Join(parts, "; "))
}
