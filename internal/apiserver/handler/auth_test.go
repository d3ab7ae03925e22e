package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	ts := newTestServer(t, false)
	ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/users", newUserBody("ana@example.com", "analyst"))

	ok := ts.mustDo(t, http.StatusOK, http.MethodPost, "/api/auth/login", map[string]string{"email": "ANA@example.com", "password": "Secret123"})
	assert.Equal(t, "Login exitoso", ok.Get("message").String())
	assert.Equal(t, "Ana", ok.Get("name").String())
	assert.False(t, ok.Get("token").Exists())

	wrongPassword := ts.mustDo(t, http.StatusUnauthorized, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@example.com", "password": "Secret124"})
	unknownUser := ts.mustDo(t, http.StatusUnauthorized, http.MethodPost, "/api/auth/login", map[string]string{"email": "bob@example.com", "password": "Secret123"})
	malformed := ts.mustDo(t, http.StatusUnauthorized, http.MethodPost, "/api/auth/login", `{"email":"x"}`)

	assert.Equal(t, "Credenciales incorrectas", wrongPassword.Get("error").String())
	assert.Equal(t, wrongPassword.Raw, unknownUser.Raw)
	assert.Equal(t, wrongPassword.Raw, malformed.Raw)
	assert.Equal(t, "auth_failed", wrongPassword.Get("kind").String())
}

func TestLogin_TokenGuardsWrites(t *testing.T) {
	ts := newTestServer(t, true)

	// sign-up stays open
	ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/users", newUserBody("ana@example.com", "director"))

	ok := ts.mustDo(t, http.StatusOK, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@example.com", "password": "Secret123"})
	token := ok.Get("token").String()
	require.NotEmpty(t, token)

	claims, err := ts.jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, database.AccountTypeDirector, claims.AccountType)

	region := map[string]any{"id": "05", "name": "Antioquia"}
	denied := ts.mustDo(t, http.StatusUnauthorized, http.MethodPost, "/api/regions", region)
	assert.Equal(t, "auth_failed", denied.Get("kind").String())

	ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/regions", region, "Authorization", "Bearer "+token)

	// reads need no token
	ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/regions/05", nil)
	ts.mustDo(t, http.StatusUnauthorized, http.MethodDelete, "/api/regions/05", nil)
	ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/regions/05", nil, "Authorization", "Bearer "+token)
}

func TestLogin_LongPassword(t *testing.T) {
	ts := newTestServer(t, false)
	password := "Aa1" + strings.Repeat("x", 97)
	body := newUserBody("ana@example.com", "analyst")
	body["password"] = password

	created := ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/users", body)
	assert.False(t, created.Get("password").Exists())

	ts.mustDo(t, http.StatusOK, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@example.com", "password": password})

	// a password sharing the first 72 bytes is still a different password
	ts.mustDo(t, http.StatusUnauthorized, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@example.com", "password": password[:99] + "y"})
}

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("Secret123")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), passwordKey("Secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret123")))
	assert.Len(t, passwordKey(strings.Repeat("x", 128)), 44)
}
