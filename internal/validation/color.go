package validation

import (
	"math"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

const hslSpace = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`

var (
	hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	// Components are not range checked: hsl(999,999%,999%) is accepted.
	// Whitespace after a comma includes \v, Unicode space separators, line and
	// paragraph separators and the BOM.
	hslPattern = regexp.MustCompile(`^hsl\((\d{1,3}),` + hslSpace + `(\d{1,3})%?,` + hslSpace + `(\d{1,3})%?\)$`)
)

// IsValidHex reports whether value is '#' followed by exactly 3 or 6 hex digits.
func IsValidHex(value string) bool {
	return hexPattern.MatchString(value)
}

// IsValidHSL reports whether value has the hsl(H, S%, L%) shape.
func IsValidHSL(value string) bool {
	return hslPattern.MatchString(value)
}

// IsValidColor accepts any value that is either a hex or an HSL color.
func IsValidColor(value string) bool {
	return IsValidHex(value) || IsValidHSL(value)
}

// ParseColor converts a valid color value into a colorful.Color for previews.
// Out-of-range HSL components are wrapped or clamped; the stored value is never touched.
func ParseColor(value string) (colorful.Color, bool) {
	if IsValidHex(value) {
		hex := value
		if len(hex) == 4 {
			hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}

	matches := hslPattern.FindStringSubmatch(value)
	if len(matches) != 4 {
		return colorful.Color{}, false
	}

	h, _ := strconv.Atoi(matches[1])
	s, _ := strconv.Atoi(matches[2])
	l, _ := strconv.Atoi(matches[3])

	hue := math.Mod(float64(h), 360)
	sat := clampPercent(s)
	light := clampPercent(l)

	return colorful.Hsl(hue, sat, light).Clamped(), true
}

func clampPercent(v int) float64 {
	if v > 100 {
		v = 100
	}
	return float64(v) / 100
}
