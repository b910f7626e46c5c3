// Package domain contains the template materialization engine: the ordered
// token rule set, the text transformer, the tree copier and the workflow that
// drives them.
package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Capitalize uppercases the first character of s and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Namespacify derives a namespace from a person's name: "Hans Ott" -> "HansOtt".
func Namespacify(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		parts[i] = Capitalize(part)
	}

	return strings.Join(parts, "")
}

// Slugify turns a directory name into a package name: "My Package" -> "my-package".
func Slugify(s string) string {
	slug := whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "-")
	return cases.Lower(language.Und).String(slug)
}
