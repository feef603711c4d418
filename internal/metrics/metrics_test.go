package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.RatingSaved(true)
	m.RatingSaved(false)
	m.RatingSaved(false)
	m.RankingSaved()
	m.RankingDeleted()
	m.CatalogLoaded("file", 12)
	m.SyncRun(nil)
	m.SyncRun(errors.New("api down"))
	m.SyncRun(errors.New("api down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ratings.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ratings.WithLabelValues("updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rankings.WithLabelValues("deleted")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.catalogGames.WithLabelValues("file")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("failure")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RatingSaved(true)
		m.RankingSaved()
		m.RankingDeleted()
		m.CatalogLoaded("api", 1)
		m.SyncRun(nil)
	})
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/games/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/games/13", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/games/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "gamesrank_http_requests_total"))
}
