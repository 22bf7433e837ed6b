// Package clipboard adapts the operating system clipboard to the form's copy port.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// System writes to the OS clipboard through atotto/clipboard.
type System struct{}

// NewSystem returns the OS clipboard adapter.
func NewSystem() *System {
	return &System{}
}

// WriteText places text on the clipboard.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
