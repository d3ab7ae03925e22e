package cnst

// Gin context keys and headers shared by middleware and handlers.
const (
	CtxKeyClaims    = "claims"
	CtxKeyRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"
)
