package i18n

import (
	"net/http"

	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/gin-gonic/gin"
)

// RespondWithError aborts with the status of err's kind and a translated
// message. The error is attached to the context for the request logger.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	kind := errorx.KindOf(err)
	c.AbortWithStatusJSON(StatusCode(kind), gin.H{
		"error": TranslateError(c, err),
		"kind":  kind.String(),
	})
}

// RespondWithSuccess sends a success HTTP response with an internationalized message
func RespondWithSuccess(c *gin.Context, statusCode int, msgID string, data map[string]any, payload any) {
	response := gin.H{
		"message": TranslateMessage(c, msgID, data),
	}

	// Add data to the top level of the response
	for k, v := range data {
		response[k] = v
	}

	// Add additional payload if provided
	if payload != nil {
		switch p := payload.(type) {
		case map[string]any:
			for k, v := range p {
				response[k] = v
			}
		case gin.H:
			for k, v := range p {
				response[k] = v
			}
		default:
			response["data"] = payload
		}
	}

	c.JSON(statusCode, response)
}

// SuccessResponse represents a response with success message
type SuccessResponse struct {
	StatusCode int
	MsgID      string
	Data       map[string]any
	Payload    any
}

// With adds a key-value pair to the response data
func (r *SuccessResponse) With(key string, value any) *SuccessResponse {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}
	r.Data[key] = value
	return r
}

// WithPayload sets the payload for the response
func (r *SuccessResponse) WithPayload(payload any) *SuccessResponse {
	r.Payload = payload
	return r
}

// Send sends the response to the client
func (r *SuccessResponse) Send(c *gin.Context) {
	RespondWithSuccess(c, r.StatusCode, r.MsgID, r.Data, r.Payload)
}

// Success creates a new success response with status code 200
func Success(msgID string) *SuccessResponse {
	return &SuccessResponse{
		StatusCode: http.StatusOK,
		MsgID:      msgID,
	}
}
