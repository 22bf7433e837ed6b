// Package form implements the form controller shared by the CLI, TUI and web
// surfaces: field state, the submit policy, reset, and the copy action.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/designvars/internal/cssgen"
	"github.com/alexisbeaulieu97/designvars/internal/design"
	"github.com/alexisbeaulieu97/designvars/internal/logger"
	"github.com/alexisbeaulieu97/designvars/internal/validation"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

// ErrNothingToCopy is returned by Copy while both groups are empty.
var ErrNothingToCopy = errors.New("nothing to copy yet")

// ErrNoClipboard is returned by Copy when the controller has no clipboard port.
var ErrNoClipboard = errors.New("no clipboard configured")

const (
	msgReset      = "All variables have been reset!"
	msgCopied     = "CSS copied to clipboard!"
	msgCopyFailed = "Failed to copy CSS"
)

// Controller owns the form fields and drives the store and generator.
type Controller struct {
	store  *design.Store
	clip   Clipboard
	notify Notifier
	log    *logger.Logger

	mu          sync.Mutex
	defaultUnit string
	fields      design.Submission
	submitted   bool
	css         string
}

// Option customises a Controller.
type Option func(*Controller)

// WithClipboard sets the clipboard port used by Copy.
func WithClipboard(c Clipboard) Option {
	return func(ctrl *Controller) { ctrl.clip = c }
}

// WithNotifier sets where notices go.
func WithNotifier(n Notifier) Option {
	return func(ctrl *Controller) { ctrl.notify = n }
}

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(ctrl *Controller) { ctrl.log = l }
}

// WithDefaultUnit sets the unit the font unit field starts with and returns to.
func WithDefaultUnit(unit string) Option {
	return func(ctrl *Controller) {
		if validation.IsFontUnit(unit) {
			ctrl.defaultUnit = unit
		}
	}
}

// New builds a controller over store.
func New(store *design.Store, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		notify:      discardNotifier{},
		defaultUnit: validation.DefaultFontUnit,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.fields.FontUnit = c.defaultUnit
	c.css = cssgen.Generate(store.Snapshot())
	return c
}

// SetField edits one field and leaves the submitted state.
func (c *Controller) SetField(f Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch f {
	case FieldColorName:
		c.fields.ColorName = value
	case FieldColorValue:
		c.fields.ColorValue = value
	case FieldFontName:
		c.fields.FontName = value
	case FieldFontSize:
		c.fields.FontSize = value
	case FieldFontUnit:
		c.fields.FontUnit = value
	}
	c.submitted = false
}

// Field returns the current value of f.
func (c *Controller) Field(f Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch f {
	case FieldColorName:
		return c.fields.ColorName
	case FieldColorValue:
		return c.fields.ColorValue
	case FieldFontName:
		return c.fields.FontName
	case FieldFontSize:
		return c.fields.FontSize
	case FieldFontUnit:
		return c.fields.FontUnit
	}
	return ""
}

// Fields returns all field values as a submission.
func (c *Controller) Fields() design.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// State derives the form state from the fields.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.submitted:
		return StateSubmitted
	case c.fields.IsEmpty():
		return StateEmpty
	case c.fields.ColorComplete() || c.fields.FontComplete():
		return StateReady
	default:
		return StatePartial
	}
}

// Submit sends the fields to the store. On failure the fields are left as they were.
func (c *Controller) Submit(ctx context.Context) (design.SubmitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.store.Submit(ctx, c.fields)
	if err != nil {
		c.log.Error(err, "submission rejected")
		c.notify.Notify(Notice{Kind: NoticeError, Message: userMessage(err)})
		return res, err
	}

	if res.Color {
		c.fields.ColorName = ""
		c.fields.ColorValue = ""
	}
	if res.Font {
		c.fields.FontName = ""
		c.fields.FontSize = ""
	}
	c.submitted = true
	c.regenerate()

	c.log.WithFields(map[string]any{"color": res.Color, "font": res.Font}).Info("submission applied")
	return res, nil
}

// Reset clears the store and its persisted record.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Reset(ctx); err != nil {
		c.notify.Notify(Notice{Kind: NoticeError, Message: userMessage(err)})
		return err
	}

	c.submitted = false
	c.regenerate()
	c.notify.Notify(Notice{Kind: NoticeInfo, Message: msgReset})
	return nil
}

// Copy writes the generated CSS to the clipboard. Failures are logged and
// reported to the user with a generic notice.
func (c *Controller) Copy(ctx context.Context) error {
	c.mu.Lock()
	text := c.css
	enabled := c.store.CopyEnabled()
	c.mu.Unlock()

	if !enabled {
		return ErrNothingToCopy
	}
	if c.clip == nil {
		c.notify.Notify(Notice{Kind: NoticeError, Message: msgCopyFailed})
		return ErrNoClipboard
	}

	if err := c.clip.WriteText(ctx, text); err != nil {
		c.log.Error(err, "failed to copy CSS")
		c.notify.Notify(Notice{Kind: NoticeError, Message: msgCopyFailed})
		return fmt.Errorf("copy css: %w", err)
	}

	c.notify.Notify(Notice{Kind: NoticeInfo, Message: msgCopied})
	return nil
}

// CSS returns the text generated after the last mutation.
func (c *Controller) CSS() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.css
}

// CopyEnabled reports whether either group holds a variable.
func (c *Controller) CopyEnabled() bool {
	return c.store.CopyEnabled()
}

// Variables returns a snapshot of the store.
func (c *Controller) Variables() design.Variables {
	return c.store.Snapshot()
}

// Layout returns the store layout.
func (c *Controller) Layout() design.Layout {
	return c.store.Layout()
}

// regenerate must be called with mu held.
func (c *Controller) regenerate() {
	c.css = cssgen.Generate(c.store.Snapshot())
}

func userMessage(err error) string {
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		if valErr.Field == "" {
			return capitalize(valErr.Message)
		}
		return fmt.Sprintf("%s: %s", valErr.Field, valErr.Message)
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
