package design

import "fmt"

// Layout selects the persisted record shape.
type Layout string

const (
	// LayoutComponent stores {"colors":{...},"fonts":{...}} under "design".
	LayoutComponent Layout = "component"
	// LayoutScript stores a flat color map under "colors". Fonts are not part of it.
	LayoutScript Layout = "script"
)

// Key returns the storage key used by the layout.
func (l Layout) Key() string {
	if l == LayoutScript {
		return "colors"
	}
	return "design"
}

// SupportsFonts reports whether the layout persists the fonts group.
func (l Layout) SupportsFonts() bool {
	return l != LayoutScript
}

func (l Layout) String() string {
	return string(l)
}

// ParseLayout converts a flag or settings value into a Layout.
func ParseLayout(value string) (Layout, error) {
	switch Layout(value) {
	case "", LayoutComponent:
		return LayoutComponent, nil
	case LayoutScript:
		return LayoutScript, nil
	default:
		return "", fmt.Errorf("unknown layout %q: expected component or script", value)
	}
}
