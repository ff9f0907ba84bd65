package service

import (
	"errors"
	"strings"
)

var (
	// ErrBadRequest is returned when the request carries no text
	ErrBadRequest = errors.New("Missing text to translate")

	// ErrUnauthorized is returned when the API key is missing or rejected
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrBackendUnavailable is returned when no translation backend is configured
	ErrBackendUnavailable = errors.New("Translation model is not available")
)

// TranslationFailedError is returned when every backend failed.
// Errors holds one error per backend in the order they were tried.
type TranslationFailedError struct {
	Errors []error
}

func (e *TranslationFailedError) Error() string {
	var sb strings.Builder
	for i, err := range e.Errors {
		if i == 0 {
			sb.WriteString("Translation failed: ")
		} else {
			sb.WriteString(", Fallback also failed: ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *TranslationFailedError) Unwrap() []error {
	return e.Errors
}
