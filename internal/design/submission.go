package design

import (
	"errors"
	"strings"

	"github.com/alexisbeaulieu97/designvars/internal/validation"
)

var (
	// ErrIncompleteSubmission is returned when neither the color pair nor the font pair is complete.
	ErrIncompleteSubmission = errors.New("please provide either colors or font variables")
	// ErrFontsUnsupported is returned when a font is added under the script layout.
	ErrFontsUnsupported = errors.New("font variables are not supported by the script layout")
)

// Submission is one form submit: an optional color pair and an optional font pair.
type Submission struct {
	ColorName  string `json:"color_name"`
	ColorValue string `json:"color_value"`
	FontName   string `json:"font_name"`
	FontSize   string `json:"font_size"`
	FontUnit   string `json:"font_unit"`
}

// Normalized returns a copy with surrounding whitespace removed and the unit defaulted.
func (s Submission) Normalized() Submission {
	out := Submission{
		ColorName:  strings.TrimSpace(s.ColorName),
		ColorValue: strings.TrimSpace(s.ColorValue),
		FontName:   strings.TrimSpace(s.FontName),
		FontSize:   strings.TrimSpace(s.FontSize),
		FontUnit:   strings.TrimSpace(s.FontUnit),
	}
	if out.FontUnit == "" {
		out.FontUnit = validation.DefaultFontUnit
	}
	return out
}

// ColorComplete reports whether both color fields are filled.
func (s Submission) ColorComplete() bool {
	n := s.Normalized()
	return n.ColorName != "" && n.ColorValue != ""
}

// FontComplete reports whether both font fields are filled.
func (s Submission) FontComplete() bool {
	n := s.Normalized()
	return n.FontName != "" && n.FontSize != ""
}

// IsEmpty reports whether all four text fields are blank. The unit is not a text field.
func (s Submission) IsEmpty() bool {
	n := s.Normalized()
	return n.ColorName == "" && n.ColorValue == "" && n.FontName == "" && n.FontSize == ""
}

// SubmitResult tells the caller which pairs were applied.
type SubmitResult struct {
	Color bool
	Font  bool
}

type colorEntry struct {
	Name  string `json:"color_name" validate:"required"`
	Value string `json:"color_value" validate:"required,csscolor"`
}

type fontEntry struct {
	Name string `json:"font_name" validate:"required"`
	Size string `json:"font_size" validate:"required"`
	Unit string `json:"font_unit" validate:"fontunit"`
}
