package dto

import (
	"encoding/json"
	"testing"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindJSON(t *testing.T, body string, obj any) error {
	t.Helper()
	return BindError(binding.JSON.BindBody([]byte(body), obj))
}

func TestCreateUserRequest(t *testing.T) {
	var req CreateUserRequest
	require.NoError(t, bindJSON(t, `{
		"first_name": "ana",
		"last_name": "PÉREZ",
		"email": "Ana@Example.COM",
		"password": "Secret123",
		"account_type": "administrador"
	}`, &req))
	require.NoError(t, req.Validate())

	u := req.ToModel("hash")
	assert.Equal(t, "Ana", u.FirstName)
	assert.Equal(t, "Pérez", u.LastName)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "hash", u.Password)
	assert.Equal(t, database.AccountTypeAdministrator, u.AccountType)
}

func TestCreateUserRequest_BindingErrors(t *testing.T) {
	var req CreateUserRequest
	err := bindJSON(t, `{"first_name":"Ana","last_name":"Perez","email":"not-an-email","password":"Secret123","account_type":"analyst"}`, &req)
	require.Error(t, err)
	assert.True(t, errorx.IsKind(err, errorx.KindValidation))
	assert.Contains(t, err.Error(), "email")

	req = CreateUserRequest{}
	err = bindJSON(t, `{"last_name":"Perez","email":"a@b.co","password":"Secret123","account_type":"analyst"}`, &req)
	assert.ErrorContains(t, err, "first_name")

	req = CreateUserRequest{}
	err = bindJSON(t, `{"first_name": 12}`, &req)
	assert.True(t, errorx.IsKind(err, errorx.KindValidation))

	req = CreateUserRequest{}
	err = bindJSON(t, `{`, &req)
	assert.ErrorIs(t, err, errorx.ErrBadRequest)
}

func TestCreateUserRequest_Validate(t *testing.T) {
	base := CreateUserRequest{
		FirstName:   "Ana",
		LastName:    "Perez",
		Email:       "a@b.co",
		Password:    "Secret123",
		AccountType: "analyst",
	}

	r := base
	r.AccountType = "superuser"
	assert.ErrorContains(t, r.Validate(), "account_type")

	r = base
	r.Password = "secret123"
	assert.ErrorContains(t, r.Validate(), "uppercase")

	r = base
	r.LastName = "O'Neil"
	assert.ErrorContains(t, r.Validate(), "last_name")
}

func TestUpdateUserRequest_Patch(t *testing.T) {
	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"luis","email":"LUIS@Example.com","last_name":null}`), &req))

	p, err := req.Patch()
	require.NoError(t, err)
	assert.Equal(t, "Luis", *p.FirstName.Value())
	assert.Equal(t, "luis@example.com", *p.Email.Value())
	assert.False(t, p.LastName.IsSet())
	assert.False(t, p.AccountType.IsSet())

	req = UpdateUserRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"email":"nope"}`), &req))
	_, err = req.Patch()
	assert.ErrorContains(t, err, "email")

	req = UpdateUserRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"account_type":"analista"}`), &req))
	p, err = req.Patch()
	require.NoError(t, err)
	assert.Equal(t, database.AccountTypeAnalyst, *p.AccountType.Value())
}

func TestUserResponses(t *testing.T) {
	u := &database.User{ID: 3, FirstName: "Ana", LastName: "Perez", Email: "a@b.co", Password: "hash", AccountType: database.AccountTypeDirector}

	data, err := json.Marshal(NewUserResponse(u))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.JSONEq(t, `{"id":3,"first_name":"Ana","last_name":"Perez","email":"a@b.co","account_type":"director"}`, string(data))

	assert.Equal(t, UserLookup{Name: "Ana Perez", Email: "a@b.co", AccountType: "director"}, NewUserLookup(u))
	assert.Empty(t, NewUserResponses(nil))
	assert.NotNil(t, NewUserResponses(nil))
}
