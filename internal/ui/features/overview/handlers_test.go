package overview

import (
	"net/http"
	"net/http/httptest"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/ui/features"
)

func TestOverviewPage(t *testing.T) {
	fx := features.SetupTestFixture(t)
	handlers := NewHandlers(fx.Store, fx.SessionStore, fx.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handlers.OverviewPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Total Fires")
	assert.Contains(t, body, "4 of 4 fires")
	assert.Contains(t, body, "RIDGE")
	assert.Contains(t, body, "California")
	assert.Contains(t, body, "fire_year")
	assert.Contains(t, body, "(unnamed)")

	assert.Equal(t, float64(1), promtestutil.ToFloat64(fx.Metrics.PageViews.WithLabelValues("overview")))
}

func TestOverviewPageFiltered(t *testing.T) {
	fx := features.SetupTestFixture(t)
	handlers := NewHandlers(fx.Store, fx.SessionStore, fx.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/?filters=1&states=GA", nil)
	w := httptest.NewRecorder()
	handlers.OverviewPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "2 of 4 fires")
	assert.Contains(t, body, "SWAMP")
	assert.NotContains(t, body, "RIDGE")
}

func TestOverviewPageRowSelection(t *testing.T) {
	fx := features.SetupTestFixture(t)
	handlers := NewHandlers(fx.Store, fx.SessionStore, fx.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/?rows=25", nil)
	w := httptest.NewRecorder()
	handlers.OverviewPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="25" selected>`)
}
