package errorx

var (
	ErrNotFound  = New(KindNotFound, "ErrorNotFound", "{{.Entity}} not found")
	ErrNoResults = New(KindNotFound, "ErrorNoResults", "no {{.Entity}} records match the query")

	ErrValidation  = New(KindValidation, "ErrorValidation", "invalid value for {{.Field}}: {{.Reason}}")
	ErrBadRequest  = New(KindValidation, "ErrorBadRequest", "malformed request: {{.Reason}}")
	ErrInvalidDate = New(KindValidation, "ErrorInvalidDate", "{{.Field}} must be a date in YYYY-MM-DD format")
	ErrInvalidID   = New(KindValidation, "ErrorInvalidID", "{{.Field}} must be a positive integer")

	ErrEmailExists  = New(KindConflict, "ErrorEmailExists", "a user with email {{.Email}} already exists")
	ErrCenterExists = New(KindConflict, "ErrorCenterExists", "center {{.Name}} already exists in region {{.RegionID}}")
	ErrDuplicate    = New(KindConflict, "ErrorDuplicate", "{{.Entity}} already exists")

	ErrReferentialIntegrity = New(KindReferentialIntegrity, "ErrorReferentialIntegrity", "operation on {{.Entity}} violates a reference to another record")

	ErrInvalidCredentials = New(KindAuthFailed, "ErrorInvalidCredentials", "invalid email or password")
	ErrUnauthorized       = New(KindAuthFailed, "ErrorUnauthorized", "authentication required")

	ErrInternal = New(KindInternal, "ErrorInternal", "internal error")
)

// NotFound is ErrNotFound for entity.
func NotFound(entity string) *Error {
	return ErrNotFound.With("Entity", entity)
}

// NoResults is ErrNoResults for entity.
func NoResults(entity string) *Error {
	return ErrNoResults.With("Entity", entity)
}

// Invalid is ErrValidation for a field.
func Invalid(field, reason string) *Error {
	return ErrValidation.With("Field", field).With("Reason", reason)
}
