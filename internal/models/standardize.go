package models

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

// ===============================
// Standardization helpers
// ===============================
// A cases.Caser keeps state, so a new one is built per call.

// TitleName upper-cases the first letter of every word and lower-cases the rest.
func TitleName(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

// Capitalize upper-cases only the first letter of the whole string.
func Capitalize(s string) string {
	s = cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(s))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// NormalizeEmail drops every whitespace character and lower-cases the rest.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func NormalizeDigits(s string) string {
	return validators.OnlyDigits(s)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validators.Field(field, validators.New(
			validators.KindStructural, validators.CodeMissingField, "Campo obrigatório."))
	}
	return nil
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
