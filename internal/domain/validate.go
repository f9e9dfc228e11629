package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MaxDisplayNameLen  = 36
	MaxFriendlyNameLen = 64
)

var validate = validator.New()

func ValidateDisplayName(name string) error {
	return validateVar("displayName", name, fmt.Sprintf("required,max=%d", MaxDisplayNameLen))
}

func ValidateFriendlyName(name string) error {
	return validateVar("friendlyName", name, fmt.Sprintf("required,max=%d", MaxFriendlyNameLen))
}

func validateVar(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return fmt.Errorf("%w: %s %s", ErrValidation, field, failedTag(err))
	}
	return nil
}

func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if p := verrs[0].Param(); p != "" {
			return verrs[0].Tag() + "=" + p
		}
		return verrs[0].Tag()
	}
	return err.Error()
}
