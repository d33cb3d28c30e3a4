package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/store"
)

func newTestSessions() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}

func TestParseFiltersDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	fs := ParseFilters(httptest.NewRecorder(), r, newTestSessions())

	assert.Zero(t, fs.From)
	assert.Zero(t, fs.To)
	assert.Empty(t, fs.States)
	assert.Empty(t, fs.Seasons)
	assert.Equal(t, 10, fs.PreviewRows())
}

func TestParseFiltersFromQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/?filters=1&from=2000&to=2010&states=ca&states=or&seasons=Summer&seasons=bogus", nil)

	fs := ParseFilters(httptest.NewRecorder(), r, newTestSessions())

	assert.Equal(t, 2000, fs.From)
	assert.Equal(t, 2010, fs.To)
	assert.Equal(t, []string{"CA", "OR"}, fs.States)
	assert.Equal(t, []string{"Summer"}, fs.Seasons)
}

func TestParseFiltersSwapsReversedYears(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?filters=1&from=2010&to=2000", nil)

	fs := ParseFilters(httptest.NewRecorder(), r, newTestSessions())

	assert.Equal(t, 2000, fs.From)
	assert.Equal(t, 2010, fs.To)
}

func TestParseFiltersSessionRoundtrip(t *testing.T) {
	sessionStore := newTestSessions()

	first := httptest.NewRequest(http.MethodGet, "/?filters=1&from=2001&to=2005&states=CA", nil)
	w := httptest.NewRecorder()
	ParseFilters(w, first, sessionStore)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// A later page load without filter params sees the saved selection.
	second := httptest.NewRequest(http.MethodGet, "/trends", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}
	fs := ParseFilters(httptest.NewRecorder(), second, sessionStore)

	assert.Equal(t, 2001, fs.From)
	assert.Equal(t, 2005, fs.To)
	assert.Equal(t, []string{"CA"}, fs.States)
}

func TestParseFiltersMarkerClearsSelection(t *testing.T) {
	sessionStore := newTestSessions()

	first := httptest.NewRequest(http.MethodGet, "/?filters=1&states=CA&seasons=Summer", nil)
	w := httptest.NewRecorder()
	ParseFilters(w, first, sessionStore)

	// Submitting the filter form with nothing selected resets everything.
	second := httptest.NewRequest(http.MethodGet, "/?filters=1", nil)
	for _, c := range w.Result().Cookies() {
		second.AddCookie(c)
	}
	fs := ParseFilters(httptest.NewRecorder(), second, sessionStore)

	assert.Empty(t, fs.States)
	assert.Empty(t, fs.Seasons)
}

func TestParseFiltersRowsOnlyKeepsFilters(t *testing.T) {
	sessionStore := newTestSessions()

	first := httptest.NewRequest(http.MethodGet, "/?filters=1&states=CA", nil)
	w := httptest.NewRecorder()
	ParseFilters(w, first, sessionStore)

	second := httptest.NewRequest(http.MethodGet, "/?rows=50", nil)
	for _, c := range w.Result().Cookies() {
		second.AddCookie(c)
	}
	fs := ParseFilters(httptest.NewRecorder(), second, sessionStore)

	assert.Equal(t, []string{"CA"}, fs.States)
	assert.Equal(t, 50, fs.Rows)
}

func TestParseFiltersClampsRows(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?rows=33", nil)

	fs := ParseFilters(httptest.NewRecorder(), r, newTestSessions())

	assert.Equal(t, 10, fs.PreviewRows())
}

func TestStoreFilter(t *testing.T) {
	fs := FilterState{From: 1998, To: 2004, States: []string{"CA"}, Seasons: []string{"Fall"}}

	got := fs.StoreFilter()

	assert.Equal(t, store.Filter{
		YearFrom: 1998,
		YearTo:   2004,
		States:   []string{"CA"},
		Seasons:  []string{"Fall"},
	}, got)
}
