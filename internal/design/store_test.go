package design

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designvars/internal/logger"
	"github.com/alexisbeaulieu97/designvars/internal/storage"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

type failingKV struct {
	storage.KV
	failSet    bool
	failDelete bool
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.KV.Set(ctx, key, value)
}

func (f *failingKV) Delete(ctx context.Context, key string) error {
	if f.failDelete {
		return errors.New("read-only")
	}
	return f.KV.Delete(ctx, key)
}

func openStore(t *testing.T, kv storage.KV, layout Layout) *Store {
	t.Helper()
	s, err := Open(context.Background(), kv, layout)
	require.NoError(t, err)
	return s
}

func TestOpenEmptyStorage(t *testing.T) {
	t.Parallel()

	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)
	assert.True(t, s.Snapshot().IsEmpty())
	assert.False(t, s.CopyEnabled())
}

func TestStoreLogsStorageKey(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	s, err := Open(context.Background(), storage.NewMemoryStore(), LayoutScript, WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, s.AddColor(context.Background(), "brand", "#fff"))

	assert.Contains(t, buf.String(), `"key":"colors"`)
	assert.Contains(t, buf.String(), "variables saved")
}

func TestAddColorPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := openStore(t, kv, LayoutComponent)

	require.NoError(t, s.AddColor(ctx, "brand", "#ff0000"))

	raw, found, err := kv.Get(ctx, "design")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"colors":{"brand":"#ff0000"},"fonts":{}}`, raw)
	assert.True(t, s.CopyEnabled())
}

func TestAddColorRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := openStore(t, kv, LayoutComponent)

	var valErr *apperrors.ValidationError

	err := s.AddColor(ctx, "brand", "red")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "color_value", valErr.Field)

	err = s.AddColor(ctx, "   ", "#fff")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "color_name", valErr.Field)

	assert.Equal(t, 0, kv.Len(), "nothing persisted after rejected input")
}

func TestAddColorOverwritesInPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)

	require.NoError(t, s.AddColor(ctx, "a", "#111"))
	require.NoError(t, s.AddColor(ctx, "b", "#222"))
	require.NoError(t, s.AddColor(ctx, "a", "#333"))

	assert.Equal(t, []Entry{{"a", "#333"}, {"b", "#222"}}, s.Snapshot().Colors.Entries())
}

func TestAddFontConcatenatesUnit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)

	require.NoError(t, s.AddFont(ctx, "heading", "2", "rem"))
	require.NoError(t, s.AddFont(ctx, "body", "16", "px"))
	require.NoError(t, s.AddFont(ctx, "small", "0.8", ""))

	v, ok := s.Snapshot().Fonts.Get("heading")
	require.True(t, ok)
	assert.Equal(t, "2rem", v)

	v, _ = s.Snapshot().Fonts.Get("body")
	assert.Equal(t, "16px", v)

	v, _ = s.Snapshot().Fonts.Get("small")
	assert.Equal(t, "0.8rem", v, "unit defaults to rem")
}

func TestAddFontRequiresMagnitudeAndKnownUnit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, s.AddFont(ctx, "heading", "", "rem"), &valErr)
	assert.Equal(t, "font_size", valErr.Field)

	require.ErrorAs(t, s.AddFont(ctx, "heading", "2", "pt"), &valErr)
	assert.Equal(t, "font_unit", valErr.Field)

	require.NoError(t, s.AddFont(ctx, "odd", "big", "em"), "magnitude is not format checked")
}

func TestSubmitRejectsEmptySubmission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := openStore(t, kv, LayoutComponent)
	require.NoError(t, s.AddColor(ctx, "keep", "#000"))
	before := s.Snapshot()

	_, err := s.Submit(ctx, Submission{})
	require.ErrorIs(t, err, ErrIncompleteSubmission)

	_, err = s.Submit(ctx, Submission{ColorName: "half", FontSize: "2"})
	require.ErrorIs(t, err, ErrIncompleteSubmission, "no pair is complete")

	assert.Equal(t, before.Colors.Entries(), s.Snapshot().Colors.Entries())
}

func TestSubmitAppliesBothPairs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)

	res, err := s.Submit(ctx, Submission{ColorName: "brand", ColorValue: "#ff0000", FontName: "heading", FontSize: "2", FontUnit: "em"})
	require.NoError(t, err)
	assert.Equal(t, SubmitResult{Color: true, Font: true}, res)

	snap := s.Snapshot()
	assert.Equal(t, []Entry{{"brand", "#ff0000"}}, snap.Colors.Entries())
	assert.Equal(t, []Entry{{"heading", "2em"}}, snap.Fonts.Entries())
}

func TestSubmitAppliesSinglePair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)

	res, err := s.Submit(ctx, Submission{FontName: "heading", FontSize: "2"})
	require.NoError(t, err)
	assert.Equal(t, SubmitResult{Font: true}, res)
	assert.Equal(t, 0, s.Snapshot().Colors.Len())
}

func TestSubmitRejectsWholeSubmissionOnInvalidColor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, storage.NewMemoryStore(), LayoutComponent)

	_, err := s.Submit(ctx, Submission{ColorName: "brand", ColorValue: "nope", FontName: "heading", FontSize: "2"})
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.True(t, s.Snapshot().IsEmpty())
}

func TestResetRemovesPersistedRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := openStore(t, kv, LayoutComponent)
	require.NoError(t, s.AddColor(ctx, "brand", "#fff"))
	require.NoError(t, s.AddFont(ctx, "heading", "2", "rem"))

	require.NoError(t, s.Reset(ctx))

	_, found, err := kv.Get(ctx, "design")
	require.NoError(t, err)
	assert.False(t, found, "reset removes the key rather than writing an empty record")
	assert.True(t, s.Snapshot().IsEmpty())
	assert.False(t, s.CopyEnabled())
}

func TestRoundTripPreservesOrderAndValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := openStore(t, kv, LayoutComponent)
	require.NoError(t, s.AddColor(ctx, "zeta", "#111"))
	require.NoError(t, s.AddColor(ctx, "alpha", "hsl(200, 50%, 60%)"))
	require.NoError(t, s.AddFont(ctx, "h1", "3", "rem"))
	require.NoError(t, s.AddFont(ctx, "body", "1", "em"))

	reloaded := openStore(t, kv, LayoutComponent)
	assert.Equal(t, s.Snapshot(), reloaded.Snapshot())
	assert.Equal(t, []Entry{{"zeta", "#111"}, {"alpha", "hsl(200, 50%, 60%)"}}, reloaded.Snapshot().Colors.Entries())
}

func TestOpenReportsCorruptRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, "design", `{"colors":`))

	_, err := Open(ctx, kv, LayoutComponent)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "design", parseErr.Key)
}

func TestFailedSaveLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := &failingKV{KV: storage.NewMemoryStore()}
	s := openStore(t, kv, LayoutComponent)
	require.NoError(t, s.AddColor(ctx, "a", "#111"))

	kv.failSet = true
	require.Error(t, s.AddColor(ctx, "b", "#222"))
	assert.Equal(t, []Entry{{"a", "#111"}}, s.Snapshot().Colors.Entries())
}

func TestFailedResetKeepsVariables(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := &failingKV{KV: storage.NewMemoryStore()}
	s := openStore(t, kv, LayoutComponent)
	require.NoError(t, s.AddColor(ctx, "a", "#111"))

	kv.failDelete = true
	require.Error(t, s.Reset(ctx))
	assert.True(t, s.CopyEnabled())
}

func TestScriptLayoutUsesFlatColorMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, "colors", `{"primary":"#123456"}`))

	s := openStore(t, kv, LayoutScript)
	assert.Equal(t, []Entry{{"primary", "#123456"}}, s.Snapshot().Colors.Entries())

	require.NoError(t, s.AddColor(ctx, "accent", "#abc"))
	raw, _, err := kv.Get(ctx, "colors")
	require.NoError(t, err)
	assert.Equal(t, `{"primary":"#123456","accent":"#abc"}`, raw)

	require.ErrorIs(t, s.AddFont(ctx, "heading", "2", "rem"), ErrFontsUnsupported)

	_, err = s.Submit(ctx, Submission{FontName: "heading", FontSize: "2"})
	require.ErrorIs(t, err, ErrFontsUnsupported)

	require.NoError(t, s.Reset(ctx))
	_, found, err := kv.Get(ctx, "colors")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	l, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutComponent, l)
	assert.Equal(t, "design", l.Key())

	l, err = ParseLayout("script")
	require.NoError(t, err)
	assert.Equal(t, "colors", l.Key())
	assert.False(t, l.SupportsFonts())

	_, err = ParseLayout("react")
	require.Error(t, err)
}
