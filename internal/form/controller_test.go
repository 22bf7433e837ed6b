package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designvars/internal/design"
	"github.com/alexisbeaulieu97/designvars/internal/storage"
)

type fakeClipboard struct {
	text string
	err  error
	hits int
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	f.hits++
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type recorder struct {
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.notices = append(r.notices, n)
}

func (r *recorder) last() Notice {
	if len(r.notices) == 0 {
		return Notice{}
	}
	return r.notices[len(r.notices)-1]
}

func newController(t *testing.T, opts ...Option) (*Controller, storage.KV, *recorder) {
	t.Helper()
	kv := storage.NewMemoryStore()
	store, err := design.Open(context.Background(), kv, design.LayoutComponent)
	require.NoError(t, err)
	rec := &recorder{}
	opts = append([]Option{WithNotifier(rec)}, opts...)
	return New(store, opts...), kv, rec
}

func TestStateTransitions(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t)
	assert.Equal(t, StateEmpty, c.State())

	c.SetField(FieldColorName, "brand")
	assert.Equal(t, StatePartial, c.State())

	c.SetField(FieldColorValue, "#ff0000")
	assert.Equal(t, StateReady, c.State())

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, c.State())

	c.SetField(FieldFontName, "h")
	assert.Equal(t, StatePartial, c.State())
}

func TestSubmitClearsAppliedFieldsAndRegenerates(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t)
	c.SetField(FieldColorName, "brand")
	c.SetField(FieldColorValue, "#ff0000")
	c.SetField(FieldFontName, "heading")

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, design.SubmitResult{Color: true}, res)

	assert.Empty(t, c.Field(FieldColorName))
	assert.Empty(t, c.Field(FieldColorValue))
	assert.Equal(t, "heading", c.Field(FieldFontName), "incomplete font pair is kept")
	assert.Contains(t, c.CSS(), "    --brand: #ff0000;\n")
	assert.True(t, c.CopyEnabled())
}

func TestSubmitFontUsesSelectedUnit(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t, WithDefaultUnit("px"))
	assert.Equal(t, "px", c.Field(FieldFontUnit))

	c.SetField(FieldFontName, "heading")
	c.SetField(FieldFontSize, "2")
	c.SetField(FieldFontUnit, "rem")

	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	v, ok := c.Variables().Fonts.Get("heading")
	require.True(t, ok)
	assert.Equal(t, "2rem", v)
	assert.Contains(t, c.CSS(), "    --heading: 2rem;\n")
}

func TestSubmitEmptyFormNotifiesAndKeepsStore(t *testing.T) {
	t.Parallel()

	c, kv, rec := newController(t)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, design.ErrIncompleteSubmission)
	assert.Equal(t, NoticeError, rec.last().Kind)
	assert.Equal(t, "Please provide either colors or font variables", rec.last().Message)

	_, found, err := kv.Get(context.Background(), "design")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, StateEmpty, c.State())
}

func TestSubmitInvalidColorKeepsFields(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t)
	c.SetField(FieldColorName, "brand")
	c.SetField(FieldColorValue, "crimson")

	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "crimson", c.Field(FieldColorValue))
	assert.Contains(t, rec.last().Message, "invalid color format")
	assert.Equal(t, StateReady, c.State())
}

func TestResetClearsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, kv, rec := newController(t)
	c.SetField(FieldColorName, "brand")
	c.SetField(FieldColorValue, "#fff")
	_, err := c.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Reset(ctx))

	assert.False(t, c.CopyEnabled())
	assert.Equal(t, ":root { \n}", c.CSS())
	assert.Equal(t, Notice{Kind: NoticeInfo, Message: "All variables have been reset!"}, rec.last())

	_, found, err := kv.Get(ctx, "design")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCopyDisabledWhenEmpty(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	c, _, _ := newController(t, WithClipboard(clip))

	require.ErrorIs(t, c.Copy(context.Background()), ErrNothingToCopy)
	assert.Zero(t, clip.hits)
}

func TestCopyWritesCSS(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clip := &fakeClipboard{}
	c, _, rec := newController(t, WithClipboard(clip))
	c.SetField(FieldFontName, "body")
	c.SetField(FieldFontSize, "1")
	_, err := c.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Copy(ctx))
	assert.Equal(t, c.CSS(), clip.text)
	assert.Equal(t, Notice{Kind: NoticeInfo, Message: "CSS copied to clipboard!"}, rec.last())
}

func TestCopyFailureIsGeneric(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clip := &fakeClipboard{err: errors.New("xclip not found")}
	c, _, rec := newController(t, WithClipboard(clip))
	c.SetField(FieldColorName, "a")
	c.SetField(FieldColorValue, "#000")
	_, err := c.Submit(ctx)
	require.NoError(t, err)

	err = c.Copy(ctx)
	require.Error(t, err)
	assert.Equal(t, Notice{Kind: NoticeError, Message: "Failed to copy CSS"}, rec.last())
}

func TestNewControllerRendersPersistedState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, "design", `{"colors":{"brand":"#123"},"fonts":{"h1":"2rem"}}`))
	store, err := design.Open(ctx, kv, design.LayoutComponent)
	require.NoError(t, err)

	c := New(store)
	assert.Equal(t, ":root { \n    --brand: #123;\n    --h1: 2rem;\n}", c.CSS())
	assert.True(t, c.CopyEnabled())
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "color_value", FieldColorValue.String())
	assert.Equal(t, "partially filled", StatePartial.String())
	assert.Equal(t, "error", NoticeError.String())
}
