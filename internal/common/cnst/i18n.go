package cnst

const (
	XLang = "X-Lang"

	LangEN      = "en"
	LangES      = "es"
	LangDefault = LangES
)
