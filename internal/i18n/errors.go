package i18n

import (
	"errors"
	"net/http"

	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/gin-gonic/gin"
)

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind errorx.Kind) int {
	switch kind {
	case errorx.KindNotFound:
		return http.StatusNotFound
	case errorx.KindValidation:
		return http.StatusBadRequest
	case errorx.KindConflict, errorx.KindReferentialIntegrity:
		return http.StatusConflict
	case errorx.KindAuthFailed:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// TranslateError renders err in the context's language. Unclassified errors
// are reported as ErrInternal so driver messages never reach the client.
func TranslateError(c *gin.Context, err error) string {
	if err == nil {
		return ""
	}

	var xe *errorx.Error
	if !errors.As(err, &xe) || xe.Kind == errorx.KindInternal {
		xe = errorx.ErrInternal
	}

	if translated := TranslateMessage(c, xe.MessageID, xe.Data); translated != xe.MessageID {
		return translated
	}
	return xe.Text()
}
