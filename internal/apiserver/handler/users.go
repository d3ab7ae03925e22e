package handler

import (
	"net/http"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityUser = "user"

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	user, err := h.db.GetUser(c.Request.Context(), id)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser registers a user. It is reachable without a token.
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bind(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	user := req.ToModel(hash)
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	h.mutated(entityUser, "create")
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	var req dto.UpdateUserRequest
	if !bind(c, &req) {
		return
	}
	p, err := req.Patch()
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	user, err := h.db.UpdateUser(c.Request.Context(), id, p)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	h.mutated(entityUser, "update")
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	user, err := h.db.DeleteUser(c.Request.Context(), id)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	h.deleted(c, entityUser, dto.NewUserResponse(user), nil)
}

// ListUsersByType returns the users of an account type; an empty list is
// not an error.
func (h *Handler) ListUsersByType(c *gin.Context) {
	t, err := database.ParseAccountType(c.Param("type"))
	if err != nil {
		i18n.RespondWithError(c, errorx.Invalid("type", "must be one of director, administrator, analyst"))
		return
	}
	users, err := h.db.ListUsersByAccountType(c.Request.Context(), t)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (h *Handler) GetUserByEmail(c *gin.Context) {
	user, err := h.db.GetUserByEmail(c.Request.Context(), dto.NormalizeEmail(c.Param("email")))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// LookupUser finds a user by email and account type and returns only the
// name, email and type.
func (h *Handler) LookupUser(c *gin.Context) {
	email := dto.NormalizeEmail(c.Query("email"))
	if email == "" {
		i18n.RespondWithError(c, errorx.Invalid("email", "is required"))
		return
	}
	t, err := database.ParseAccountType(c.Query("type"))
	if err != nil {
		i18n.RespondWithError(c, errorx.Invalid("type", "must be one of director, administrator, analyst"))
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if user.AccountType != t {
		i18n.RespondWithError(c, errorx.NotFound(entityUser))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserLookup(user))
}
