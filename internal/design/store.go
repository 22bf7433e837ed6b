// Package design owns the variable store: two ordered groups of design
// tokens persisted as one JSON record in a key-value storage service.
package design

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/designvars/internal/logger"
	"github.com/alexisbeaulieu97/designvars/internal/storage"
	"github.com/alexisbeaulieu97/designvars/internal/validation"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

// Store holds the current variables and writes them back after every mutation.
type Store struct {
	kv     storage.KV
	layout Layout
	log    *logger.Logger

	mu   sync.RWMutex
	vars Variables
}

// Option customises a Store.
type Option func(*Store)

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// Open loads the record for layout from kv. A missing record yields an empty store.
func Open(ctx context.Context, kv storage.KV, layout Layout, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if layout == "" {
		layout = LayoutComponent
	}

	s := &Store{kv: kv, layout: layout}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Layout returns the persisted layout.
func (s *Store) Layout() Layout {
	return s.layout
}

// Snapshot returns a copy of the current variables.
func (s *Store) Snapshot() Variables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars.Clone()
}

// CopyEnabled reports whether there is anything to copy.
func (s *Store) CopyEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.vars.IsEmpty()
}

// AddColor validates and stores colors[name] = value.
func (s *Store) AddColor(ctx context.Context, name, value string) error {
	entry := colorEntry{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
	if err := validation.Struct(entry); err != nil {
		return err
	}

	return s.mutate(ctx, func(v *Variables) {
		v.Colors.Set(entry.Name, entry.Value)
	})
}

// AddFont stores fonts[name] = magnitude + unit. The magnitude only has to be present.
func (s *Store) AddFont(ctx context.Context, name, magnitude, unit string) error {
	entry, err := s.fontEntry(name, magnitude, unit)
	if err != nil {
		return err
	}

	return s.mutate(ctx, func(v *Variables) {
		v.Fonts.Set(entry.Name, entry.Size+entry.Unit)
	})
}

// Submit applies every complete pair of sub in one write. It is rejected when
// no pair is complete or when any complete pair fails validation.
func (s *Store) Submit(ctx context.Context, sub Submission) (SubmitResult, error) {
	n := sub.Normalized()
	result := SubmitResult{Color: n.ColorComplete(), Font: n.FontComplete()}

	if !result.Color && !result.Font {
		return SubmitResult{}, apperrors.NewValidationError("", ErrIncompleteSubmission.Error(), ErrIncompleteSubmission)
	}

	var color colorEntry
	if result.Color {
		color = colorEntry{Name: n.ColorName, Value: n.ColorValue}
		if err := validation.Struct(color); err != nil {
			return SubmitResult{}, err
		}
	}

	var font fontEntry
	if result.Font {
		entry, err := s.fontEntry(n.FontName, n.FontSize, n.FontUnit)
		if err != nil {
			return SubmitResult{}, err
		}
		font = entry
	}

	err := s.mutate(ctx, func(v *Variables) {
		if result.Color {
			v.Colors.Set(color.Name, color.Value)
		}
		if result.Font {
			v.Fonts.Set(font.Name, font.Size+font.Unit)
		}
	})
	if err != nil {
		return SubmitResult{}, err
	}

	return result, nil
}

// Reset clears both groups and removes the persisted record.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.layout.Key()
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.WithKey(key).Error(err, "failed to remove persisted variables")
		return err
	}

	s.vars = Variables{}
	s.log.WithKey(key).Info("variables reset")
	return nil
}

func (s *Store) fontEntry(name, magnitude, unit string) (fontEntry, error) {
	if !s.layout.SupportsFonts() {
		return fontEntry{}, apperrors.NewValidationError("font_name", ErrFontsUnsupported.Error(), ErrFontsUnsupported)
	}

	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = validation.DefaultFontUnit
	}
	entry := fontEntry{Name: strings.TrimSpace(name), Size: strings.TrimSpace(magnitude), Unit: unit}
	if err := validation.Struct(entry); err != nil {
		return fontEntry{}, err
	}
	return entry, nil
}

// mutate applies fn and persists the result, restoring the previous state if the write fails.
func (s *Store) mutate(ctx context.Context, fn func(*Variables)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.vars.Clone()
	fn(&s.vars)

	if err := s.save(ctx); err != nil {
		s.vars = previous
		return err
	}
	return nil
}

func (s *Store) load(ctx context.Context) error {
	key := s.layout.Key()
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load variables: %w", err)
	}
	if !found {
		s.log.WithKey(key).Debug("no persisted variables, starting empty")
		return nil
	}

	var vars Variables
	switch s.layout {
	case LayoutScript:
		err = json.Unmarshal([]byte(raw), &vars.Colors)
	default:
		err = json.Unmarshal([]byte(raw), &vars)
	}
	if err != nil {
		return apperrors.NewParseError(key, err)
	}

	s.vars = vars
	s.log.WithKey(key).WithFields(map[string]any{"colors": vars.Colors.Len(), "fonts": vars.Fonts.Len()}).Debug("variables loaded")
	return nil
}

// save must be called with mu held.
func (s *Store) save(ctx context.Context) error {
	key := s.layout.Key()

	var (
		data []byte
		err  error
	)
	switch s.layout {
	case LayoutScript:
		data, err = json.Marshal(s.vars.Colors)
	default:
		data, err = json.Marshal(s.vars)
	}
	if err != nil {
		return fmt.Errorf("encode variables: %w", err)
	}

	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.log.WithKey(key).Error(err, "failed to persist variables")
		return fmt.Errorf("save variables: %w", err)
	}

	s.log.WithKey(key).Debug("variables saved")
	return nil
}
