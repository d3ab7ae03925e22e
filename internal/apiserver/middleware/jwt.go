package middleware

import (
	"strings"

	"github.com/ecosedes/facilities/internal/auth/jwt"
	"github.com/ecosedes/facilities/internal/common/cnst"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware creates a middleware that validates JWT tokens
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if the header has the Bearer prefix
		parts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			i18n.RespondWithError(c, errorx.ErrUnauthorized)
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			i18n.RespondWithError(c, errorx.ErrUnauthorized.Wrap(err))
			return
		}

		c.Set(cnst.CtxKeyClaims, claims)
		c.Next()
	}
}

// Claims returns the token claims stored by JWTAuthMiddleware.
func Claims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(cnst.CtxKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
