package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designvars/internal/design"
	"github.com/alexisbeaulieu97/designvars/internal/storage"
)

func newTestServer(t *testing.T, layout design.Layout) (*Server, *design.Store, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryStore()
	store, err := design.Open(context.Background(), kv, layout)
	require.NoError(t, err)
	srv, err := NewServer(store)
	require.NoError(t, err)
	return srv, store, kv
}

func postForm(t *testing.T, srv http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndexRendersEmptyForm(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, design.LayoutComponent)

	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="color_name"`)
	assert.Contains(t, body, `name="font_unit"`)
	assert.Contains(t, body, `<option value="rem" selected>`)
	assert.Contains(t, body, `id="copy" disabled`)
	assert.Contains(t, body, ":root { \n}")
}

func TestSubmitAddsVariables(t *testing.T) {
	t.Parallel()
	srv, store, _ := newTestServer(t, design.LayoutComponent)

	rec := postForm(t, srv, "/", url.Values{
		"color_name":  {"brand"},
		"color_value": {"#ff0000"},
		"font_name":   {"heading"},
		"font_size":   {"2"},
		"font_unit":   {"px"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	vars := store.Snapshot()
	value, ok := vars.Colors.Get("brand")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", value)
	value, ok = vars.Fonts.Get("heading")
	require.True(t, ok)
	assert.Equal(t, "2px", value)

	body := rec.Body.String()
	assert.Contains(t, body, "--brand: #ff0000;")
	assert.Contains(t, body, "background: #ff0000")
	assert.NotContains(t, body, `id="copy" disabled`)
}

func TestSubmitRejectsInvalidColor(t *testing.T) {
	t.Parallel()
	srv, store, _ := newTestServer(t, design.LayoutComponent)

	rec := postForm(t, srv, "/", url.Values{
		"color_name":  {"brand"},
		"color_value": {"red"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.True(t, store.Snapshot().IsEmpty())

	body := rec.Body.String()
	assert.Contains(t, body, "notice-error")
	assert.Contains(t, body, "invalid color format")
	assert.Contains(t, body, `value="red"`)
}

func TestSubmitRejectsEmptyForm(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, design.LayoutComponent)

	rec := postForm(t, srv, "/", url.Values{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide either colors or font variables")
}

func TestResetClearsStore(t *testing.T) {
	t.Parallel()
	srv, store, kv := newTestServer(t, design.LayoutComponent)
	ctx := context.Background()
	require.NoError(t, store.AddColor(ctx, "brand", "#fff"))

	rec := postForm(t, srv, "/reset", url.Values{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All variables have been reset!")
	assert.True(t, store.Snapshot().IsEmpty())

	_, found, err := kv.Get(ctx, "design")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCSSEndpoint(t *testing.T) {
	t.Parallel()
	srv, store, _ := newTestServer(t, design.LayoutComponent)
	require.NoError(t, store.AddColor(context.Background(), "brand", "hsl(120, 50%, 50%)"))

	rec := get(t, srv, "/variables.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, ":root { \n    --brand: hsl(120, 50%, 50%);\n}", rec.Body.String())
}

func TestAPIEndpointKeepsOrder(t *testing.T) {
	t.Parallel()
	srv, store, _ := newTestServer(t, design.LayoutComponent)
	ctx := context.Background()
	require.NoError(t, store.AddColor(ctx, "zeta", "#000"))
	require.NoError(t, store.AddColor(ctx, "alpha", "#fff"))
	require.NoError(t, store.AddFont(ctx, "body", "1", "em"))

	rec := get(t, srv, "/api/variables")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "zeta"), strings.Index(body, "alpha"))

	var resp struct {
		Colors      map[string]string `json:"colors"`
		Fonts       map[string]string `json:"fonts"`
		CSS         string            `json:"css"`
		CopyEnabled bool              `json:"copy_enabled"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1em", resp.Fonts["body"])
	assert.True(t, resp.CopyEnabled)
	assert.Contains(t, resp.CSS, "--body: 1em;")
}

func TestScriptLayoutHidesFontFieldset(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, design.LayoutScript)

	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `name="font_name"`)
	assert.Contains(t, rec.Body.String(), "script layout")
}

func TestDefaultUnitOption(t *testing.T) {
	t.Parallel()
	store, err := design.Open(context.Background(), storage.NewMemoryStore(), design.LayoutComponent)
	require.NoError(t, err)
	srv, err := NewServer(store, WithDefaultUnit("px"))
	require.NoError(t, err)

	rec := get(t, srv, "/")
	assert.Contains(t, rec.Body.String(), `<option value="px" selected>`)
}
