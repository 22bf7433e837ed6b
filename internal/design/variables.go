package design

// Variables is the persisted design state: colors first, then fonts.
type Variables struct {
	Colors Group `json:"colors"`
	Fonts  Group `json:"fonts"`
}

// Clone returns a deep copy.
func (v Variables) Clone() Variables {
	return Variables{Colors: v.Colors.Clone(), Fonts: v.Fonts.Clone()}
}

// IsEmpty reports whether both groups are empty.
func (v Variables) IsEmpty() bool {
	return v.Colors.Len() == 0 && v.Fonts.Len() == 0
}
