package form

// Field identifies one input of the form.
type Field int

const (
	FieldColorName Field = iota
	FieldColorValue
	FieldFontName
	FieldFontSize
	FieldFontUnit
)

var fieldNames = map[Field]string{
	FieldColorName:  "color_name",
	FieldColorValue: "color_value",
	FieldFontName:   "font_name",
	FieldFontSize:   "font_size",
	FieldFontUnit:   "font_unit",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// State is the coarse form state derived from the field values.
type State int

const (
	// StateEmpty means all four text fields are blank.
	StateEmpty State = iota
	// StatePartial means something is filled but no pair is complete.
	StatePartial
	// StateReady means at least one pair is complete.
	StateReady
	// StateSubmitted holds after a successful submit until the next edit.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partially filled"
	case StateReady:
		return "ready"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
