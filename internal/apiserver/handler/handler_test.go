package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/apiserver/middleware"
	"github.com/ecosedes/facilities/internal/auth/jwt"
	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const testSecret = "this-is-a-very-long-secret-key-for-testing"

type testServer struct {
	router *gin.Engine
	db     database.Database
	jwt    *jwt.Service
}

// newTestServer wires the API over an in-memory store. withAuth enables
// bearer tokens and the write guard.
func newTestServer(t *testing.T, withAuth bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ts := &testServer{router: gin.New(), db: db}
	var guard gin.HandlerFunc
	if withAuth {
		ts.jwt, err = jwt.NewService(config.JWTConfig{SecretKey: testSecret, Duration: time.Hour})
		require.NoError(t, err)
		guard = middleware.JWTAuthMiddleware(ts.jwt)
	}

	h := NewHandler(db, ts.jwt, nil, nil)
	ts.router.Use(middleware.Language())
	ts.router.GET("/", h.Welcome)
	ts.router.GET("/healthz", h.Health)
	h.RegisterRoutes(ts.router.Group("/api"), guard)
	return ts
}

// do sends a request with an optional JSON body. Extra headers come in
// key, value pairs.
func (ts *testServer) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// mustDo is do with an expected status; it returns the parsed body.
func (ts *testServer) mustDo(t *testing.T, status int, method, path string, body any, headers ...string) gjson.Result {
	t.Helper()
	w := ts.do(method, path, body, headers...)
	require.Equal(t, status, w.Code, "%s %s: %s", method, path, w.Body.String())
	return gjson.Parse(w.Body.String())
}

func newUserBody(email, accountType string) map[string]any {
	return map[string]any{
		"first_name":   "ana",
		"last_name":    "perez",
		"email":        email,
		"password":     "Secret123",
		"account_type": accountType,
	}
}

// seedHierarchy creates a user, region 11, a center and a linked site with
// one room through the API and returns their ids.
func (ts *testServer) seedHierarchy(t *testing.T, headers ...string) (userID, centerID, siteID, roomID int64) {
	t.Helper()
	userID = ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/users", newUserBody("ana@example.com", "administrator")).Get("id").Int()
	ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/regions", map[string]any{"id": "11", "name": "Distrito Capital"}, headers...)
	centerID = ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/centers",
		map[string]any{"name": "Centro A", "city": "SANTA FE DE BOGOTA", "region_id": "11", "owner_id": userID}, headers...).Get("id").Int()
	siteID = ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/sites", map[string]any{"name": "Sede Norte", "address": "Calle 1"}, headers...).Get("id").Int()
	ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/sites/"+itoa(siteID)+"/centers/"+itoa(centerID), nil, headers...)
	roomID = ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/rooms", map[string]any{"name": "Sala 1", "circuit_type": "trifasico", "site_id": siteID}, headers...).Get("id").Int()
	return userID, centerID, siteID, roomID
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

// ids collects the id field of every element of a JSON array.
func ids(arr gjson.Result) []int64 {
	out := make([]int64, 0)
	for _, r := range arr.Array() {
		out = append(out, r.Get("id").Int())
	}
	return out
}
