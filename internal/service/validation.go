package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/socialhub/api/internal/apperrors"
)

const MaxMessageLength = 255

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects empty and whitespace-only strings.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// utf16min and utf16max bound the length in UTF-16 code units, so a
	// character outside the BMP counts twice.
	_ = v.RegisterValidation("utf16min", func(fl validator.FieldLevel) bool {
		return utf16Len(fl.Field().String()) >= paramInt(fl)
	})
	_ = v.RegisterValidation("utf16max", func(fl validator.FieldLevel) bool {
		return utf16Len(fl.Field().String()) <= paramInt(fl)
	})
	return v
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func paramInt(fl validator.FieldLevel) int {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validator tag %s has a non-integer parameter %q", fl.GetTag(), fl.Param()))
	}
	return n
}

type credentials struct {
	Username string `validate:"notblank"`
	Password string `validate:"utf16min=4"`
}

type messageBody struct {
	MessageText string `validate:"notblank,utf16max=255"`
}

func validateCredentials(username, password string) error {
	err := validate.Struct(credentials{Username: username, Password: password})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidCredentials, err)
	}
	switch fieldErrs[0].Field() {
	case "Username":
		return fmt.Errorf("%w: username must not be blank", apperrors.ErrInvalidCredentials)
	default:
		return fmt.Errorf("%w: password must be at least 4 characters long", apperrors.ErrInvalidCredentials)
	}
}

func validateMessageText(text string) error {
	err := validate.Struct(messageBody{MessageText: text})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidMessage, err)
	}
	if fieldErrs[0].Tag() == "utf16max" {
		return fmt.Errorf("%w: message text cannot be over %d characters", apperrors.ErrInvalidMessage, MaxMessageLength)
	}
	return fmt.Errorf("%w: message text cannot be blank", apperrors.ErrInvalidMessage)
}
