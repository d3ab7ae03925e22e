package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/apiserver/handler"
	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/ecosedes/facilities/pkg/trace"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	cfg := &config.APIServerConfig{}
	lg := initLogger(cfg)
	require.NotNil(t, lg)
	_ = lg.Sync()
}

func TestInitDatabase_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "apiserver.db")
	db := initDatabase(zap.NewNop(), &config.DatabaseConfig{Type: "sqlite", DBName: dbPath})
	t.Cleanup(func() { _ = db.Close() })

	regions, err := db.ListRegions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestInitJWT(t *testing.T) {
	assert.Nil(t, initJWT(zap.NewNop(), &config.JWTConfig{}))

	svc := initJWT(zap.NewNop(), &config.JWTConfig{SecretKey: strings.Repeat("k", 32), Duration: time.Hour})
	require.NotNil(t, svc)
	token, err := svc.GenerateToken(&database.User{ID: 1, Email: "ana@example.com", AccountType: database.AccountTypeDirector})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown := initTracing(context.Background(), zap.NewNop(), &trace.Config{})
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitMetrics(t *testing.T) {
	assert.Nil(t, initMetrics(&config.MetricsConfig{}))
	assert.NotNil(t, initMetrics(&config.MetricsConfig{Enabled: true, Namespace: "facilities"}))
}

func TestInitRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	initI18n(zap.NewNop(), &config.I18nConfig{DefaultLang: "es"})

	cfg := &config.APIServerConfig{
		Server:  config.ServerConfig{CORSOrigins: []string{"http://localhost:3000"}},
		Metrics: config.MetricsConfig{Enabled: true, Namespace: "facilities", Path: "/metrics"},
		JWT:     config.JWTConfig{SecretKey: strings.Repeat("s", 40), Duration: time.Hour},
	}
	lg := zap.NewNop()
	db := initDatabase(lg, &config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	t.Cleanup(func() { _ = db.Close() })

	m := initMetrics(&cfg.Metrics)
	jwtService := initJWT(lg, &cfg.JWT)
	r := initRouter(cfg, lg, handler.NewHandler(db, jwtService, m, lg), m, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/regions", strings.NewReader(`{"id":"11","name":"x"}`)))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "auth_failed", gjson.Get(w.Body.String(), "kind").String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/regions", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `facilities_http_requests_total{method="GET",route="/api/regions",status="200"} 1`)
}
