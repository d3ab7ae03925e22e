package i18n

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecosedes/facilities/internal/common/cnst"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func serve(h gin.HandlerFunc, lang string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", h)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/t", nil)
	if lang != "" {
		req.Header.Set(cnst.XLang, lang)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(errorx.KindNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusCode(errorx.KindValidation))
	assert.Equal(t, http.StatusConflict, StatusCode(errorx.KindConflict))
	assert.Equal(t, http.StatusConflict, StatusCode(errorx.KindReferentialIntegrity))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(errorx.KindAuthFailed))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errorx.KindInternal))
}

func TestRespondWithError(t *testing.T) {
	w := serve(func(c *gin.Context) {
		RespondWithError(c, errorx.NotFound("device"))
	}, "en")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "device not found", gjson.Get(w.Body.String(), "error").String())
	assert.Equal(t, "not_found", gjson.Get(w.Body.String(), "kind").String())

	w = serve(func(c *gin.Context) {
		RespondWithError(c, errorx.ErrEmailExists.With("Email", "a@b.co"))
	}, "es")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ya existe un usuario con el correo a@b.co", gjson.Get(w.Body.String(), "error").String())
}

func TestRespondWithError_HidesInternalDetails(t *testing.T) {
	w := serve(func(c *gin.Context) {
		RespondWithError(c, errors.New("dial tcp 10.0.0.1:5432: connection refused"))
	}, "en")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", gjson.Get(w.Body.String(), "error").String())
	assert.Equal(t, "internal", gjson.Get(w.Body.String(), "kind").String())
}

func TestRespondWithSuccess(t *testing.T) {
	type rec struct {
		ID uint `json:"id"`
	}
	w := serve(func(c *gin.Context) {
		Success(SuccessRecordDeleted).With("entity", "device").WithPayload(rec{ID: 7}).Send(c)
	}, "en")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "device deleted", gjson.Get(body, "message").String())
	assert.Equal(t, int64(7), gjson.Get(body, "data.id").Int())

	w = serve(func(c *gin.Context) {
		RespondWithSuccess(c, http.StatusOK, SuccessLogin, map[string]any{"name": "Ana"}, gin.H{"token": "t"})
	}, "es")
	body = w.Body.String()
	assert.Equal(t, "Login exitoso", gjson.Get(body, "message").String())
	assert.Equal(t, "Ana", gjson.Get(body, "name").String())
	assert.Equal(t, "t", gjson.Get(body, "token").String())
}
