package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(config.MetricsConfig{Namespace: "facilities"})

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/regions/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/regions/01", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	m.Mutation("region", "create")
	m.Login("failure")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	text := string(body)
	assert.Contains(t, text, `facilities_http_requests_total{method="GET",route="/api/regions/:id",status="404"} 1`)
	assert.Contains(t, text, `facilities_record_mutations_total{action="create",entity="region"} 1`)
	assert.Contains(t, text, `facilities_login_attempts_total{result="failure"} 1`)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.Mutation("site", "delete")
	m.Login("success")
}
