package i18n

import (
	"embed"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/ecosedes/facilities/internal/common/cnst"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

var (
	translatorOnce sync.Once
	translator     *I18n
)

// InitTranslator initializes the global translator. path is an optional
// directory whose TOML files override the embedded translations.
func InitTranslator(path, defaultLang string) error {
	var initErr error
	translatorOnce.Do(func() {
		translator, initErr = NewI18n(language.Make(defaultLang))
		if initErr == nil && path != "" {
			initErr = translator.LoadTranslations(path)
		}
	})
	return initErr
}

// GetTranslator returns the global translator
func GetTranslator() *I18n {
	if translator == nil {
		_ = InitTranslator("", cnst.LangDefault)
	}
	return translator
}

// I18n manages internationalization and translations
type I18n struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
	supported   []language.Tag
	matcher     language.Matcher
}

// NewI18n creates a translator preloaded with the embedded es and en
// messages. Unsupported default languages fall back to Spanish.
func NewI18n(defaultLang language.Tag) (*I18n, error) {
	supported := []language.Tag{language.Spanish, language.English}
	if base, _ := defaultLang.Base(); base.String() == "en" {
		supported = []language.Tag{language.English, language.Spanish}
	}

	bundle := i18n.NewBundle(supported[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+f.Name()); err != nil {
			return nil, fmt.Errorf("failed to load embedded translations %s: %w", f.Name(), err)
		}
	}

	return &I18n{
		bundle:      bundle,
		defaultLang: supported[0],
		supported:   supported,
		matcher:     language.NewMatcher(supported),
	}, nil
}

// LoadTranslations loads translation files from the specified directory
func (i *I18n) LoadTranslations(translationsDir string) error {
	files, err := os.ReadDir(translationsDir)
	if err != nil {
		return fmt.Errorf("failed to read translations directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".toml") {
			continue
		}
		if _, err := i.bundle.LoadMessageFile(filepath.Join(translationsDir, file.Name())); err != nil {
			return fmt.Errorf("failed to load translations %s: %w", file.Name(), err)
		}
	}
	return nil
}

// Translate returns a localized string for the given message ID and language
func (i *I18n) Translate(msgID string, lang string, templateData map[string]any) string {
	localizer := i18n.NewLocalizer(i.bundle, lang, i.defaultLang.String())

	lc := &i18n.LocalizeConfig{
		MessageID: msgID,
	}
	if len(templateData) > 0 {
		lc.TemplateData = templateData
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		return msgID // fall back to the message ID
	}
	return msg
}

// Match maps language preferences (X-Lang value or Accept-Language header)
// to a supported language code.
func (i *I18n) Match(prefs ...string) string {
	for _, p := range prefs {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := i.matcher.Match(tags...)
		if conf != language.No {
			return i.supported[idx].String()
		}
	}
	return i.defaultLang.String()
}

// LanguageFromRequest resolves the response language, X-Lang first, then
// Accept-Language.
func (i *I18n) LanguageFromRequest(r *http.Request) string {
	return i.Match(r.Header.Get(cnst.XLang), r.Header.Get("Accept-Language"))
}

// contextLang returns the language stored by the language middleware, or
// resolves it from the request when the middleware did not run.
func contextLang(c *gin.Context) string {
	if lang := c.GetString(cnst.XLang); lang != "" {
		return lang
	}
	return GetTranslator().LanguageFromRequest(c.Request)
}

// TranslateMessage translates a message ID using the context's language preference
func TranslateMessage(c *gin.Context, msgID string, data map[string]any) string {
	return GetTranslator().Translate(msgID, contextLang(c), data)
}
