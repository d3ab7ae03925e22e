package importer

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var enye = strings.NewReplacer("Ñ", "n", "ñ", "n")

// NormalizeText trims s, replaces Ñ/ñ with n and strips accents.
func NormalizeText(s string) string {
	s = enye.Replace(strings.TrimSpace(s))
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeTable applies NormalizeText to every cell.
func NormalizeTable(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = NormalizeText(cell)
		}
	}
	return out
}

// foldHeader reduces a column title to its comparison key.
func foldHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(NormalizeText(s))), " ")
}

// code renders spreadsheet numbers such as "9101.0" as "9101".
func code(s string) string {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// blank reports an empty cell, including the "nan" left by spreadsheet exports.
func blank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}
