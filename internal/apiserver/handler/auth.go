package handler

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the credentials and, when tokens are enabled, issues a
// bearer token. Every failure gets the same response.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loginFailed(c, err)
		return
	}

	// Get user from database
	user, err := h.db.GetUserByEmail(c.Request.Context(), dto.NormalizeEmail(req.Email))
	if err != nil {
		if !errorx.IsKind(err, errorx.KindNotFound) {
			i18n.RespondWithError(c, err)
			return
		}
		h.loginFailed(c, err)
		return
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordKey(req.Password)); err != nil {
		h.loginFailed(c, err)
		return
	}

	resp := i18n.Success(i18n.SuccessLogin).With("name", user.FirstName)
	if h.jwtService != nil {
		token, err := h.jwtService.GenerateToken(user)
		if err != nil {
			i18n.RespondWithError(c, errorx.ErrInternal.Wrap(err))
			return
		}
		resp.With("token", token)
	}

	h.metrics.Login("success")
	resp.Send(c)
}

func (h *Handler) loginFailed(c *gin.Context, cause error) {
	h.metrics.Login("failure")
	h.logger.Debug("login rejected", zap.Error(cause))
	i18n.RespondWithError(c, errorx.ErrInvalidCredentials)
}

// passwordKey is the bcrypt input for password: its SHA-256 digest in
// base64, which stays under bcrypt's 72-byte limit for any password length.
func passwordKey(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// hashPassword returns the bcrypt digest of password.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordKey(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errorx.ErrInternal.Wrap(err)
	}
	return string(hash), nil
}
