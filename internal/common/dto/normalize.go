package dto

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Spanish)

// cityConnectors stay lowercase in city names.
var cityConnectors = map[string]struct{}{
	"de": {}, "y": {}, "a": {}, "la": {}, "el": {},
	"los": {}, "las": {}, "del": {}, "en": {},
}

// NormalizeCity capitalizes every word of a city name except the connecting
// words, which are lowercased: "SANTA FE DE BOGOTA" becomes "Santa Fe de Bogota".
func NormalizeCity(city string) string {
	words := strings.Fields(city)
	for i, w := range words {
		lw := strings.ToLower(w)
		if _, ok := cityConnectors[lw]; ok {
			words[i] = lw
			continue
		}
		words[i] = titleCaser.String(lw)
	}
	return strings.Join(words, " ")
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeName validates a person's name (letters only) and capitalizes it.
func normalizeName(field, name string) (string, error) {
	if name == "" {
		return "", invalid(field, "is required")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return "", invalid(field, "must contain only letters")
		}
	}
	return titleCaser.String(strings.ToLower(name)), nil
}

// checkPassword enforces length and character-class rules.
func checkPassword(pw string) error {
	if n := len([]rune(pw)); n < 8 || n > 128 {
		return invalid("password", "must be between 8 and 128 characters")
	}
	var digit, upper, lower bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	switch {
	case !digit:
		return invalid("password", "must contain at least one digit")
	case !upper:
		return invalid("password", "must contain at least one uppercase letter")
	case !lower:
		return invalid("password", "must contain at least one lowercase letter")
	}
	return nil
}

// requireText rejects blank or over-long text.
func requireText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return invalid(field, "is required")
	}
	if len([]rune(s)) > 255 {
		return invalid(field, "must be at most 255 long")
	}
	return nil
}
