package insights

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/ui/features"
)

func TestInsightsPage(t *testing.T) {
	fx := features.SetupTestFixture(t)
	handlers := NewHandlers(fx.Store, fx.SessionStore, fx.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	w := httptest.NewRecorder()
	handlers.InsightsPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Most Affected States")
	assert.Contains(t, body, "California")
	assert.Contains(t, body, "Lightning")
	assert.Contains(t, body, "visualMap")

	// Two state bars, the cause pie and bar, and the heatmap.
	assert.Equal(t, 5, strings.Count(body, "echarts.init"))
}

func TestInsightsPageIndicators(t *testing.T) {
	fx := features.SetupTestFixture(t)
	handlers := NewHandlers(fx.Store, fx.SessionStore, fx.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	w := httptest.NewRecorder()
	handlers.InsightsPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	// July and August discoveries dominate the fixture, CA carries the
	// burned area, and lightning starts the most fires.
	assert.Contains(t, body, "Peak Season")
	assert.Contains(t, body, "Summer")
	assert.Contains(t, body, "Most Affected State")
	assert.Contains(t, body, "Leading Cause")
	assert.Contains(t, body, "km² burned")
}

func TestInsightsPageRecommendations(t *testing.T) {
	fx := features.SetupTestFixture(t)
	handlers := NewHandlers(fx.Store, fx.SessionStore, fx.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	w := httptest.NewRecorder()
	handlers.InsightsPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	for _, rec := range recommendations {
		assert.Contains(t, body, rec)
	}
}
