package validation

// DefaultFontUnit is used when no unit is chosen.
const DefaultFontUnit = "rem"

var fontUnits = []string{"rem", "em", "px"}

// FontUnits lists the accepted font size units in display order.
func FontUnits() []string {
	out := make([]string, len(fontUnits))
	copy(out, fontUnits)
	return out
}

// IsFontUnit reports whether unit is one of rem, em or px.
func IsFontUnit(unit string) bool {
	for _, u := range fontUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// NextFontUnit cycles to the unit after current, wrapping around.
func NextFontUnit(current string) string {
	for i, u := range fontUnits {
		if u == current {
			return fontUnits[(i+1)%len(fontUnits)]
		}
	}
	return DefaultFontUnit
}
