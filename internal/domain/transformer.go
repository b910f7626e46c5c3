package domain

import (
	"bytes"
	"unicode/utf8"
)

// Transform applies every rule of rules to text in order, feeding the output
// of each rule into the next.
func Transform(rules RuleSet, text string) string {
	for _, rule := range rules.rules {
		text = rule.Apply(text)
	}

	return text
}

// IsText reports whether content should be run through the rules. Binary
// content (invalid UTF-8 or containing NUL) is copied unchanged.
func IsText(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return false
	}

	return utf8.Valid(content)
}
