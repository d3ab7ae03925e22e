package i18n

// Success messages
const (
	SuccessLogin         = "SuccessLogin"
	SuccessRecordDeleted = "SuccessRecordDeleted"
	SuccessWelcome       = "SuccessWelcome"
)
