package main

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/designvars/internal/design"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// submitSuggestion picks a hint for a rejected submission.
func submitSuggestion(err error) string {
	var valErr *apperrors.ValidationError
	switch {
	case errors.Is(err, design.ErrIncompleteSubmission):
		return "Pass --color-name with --color, or --font-name with --font-size."
	case errors.Is(err, design.ErrFontsUnsupported):
		return "The script layout only stores colors. Use --layout component for fonts."
	case errors.As(err, &valErr) && valErr.Field == "color_value":
		return "Use a hex color such as #ff0000 or an HSL color such as hsl(0, 100%, 50%)."
	case errors.As(err, &valErr):
		return "Check the flag values and try again."
	default:
		return "Check that the data directory is writable, then retry."
	}
}
