package textutil

import (
	"regexp"
	"strings"
)

// \s does not cover the non-breaking space, which athletics sites love.
var whitespaceRegex = regexp.MustCompile(`[\s\x{00a0}\x{2007}\x{202f}]+`)

// Clean collapses every run of whitespace into a single space and trims both ends.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return strings.Trim(whitespaceRegex.ReplaceAllString(text, " "), " ")
}

// NormalizeName lowercases a name and strips all whitespace so it can be
// compared loosely against other names.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	return whitespaceRegex.ReplaceAllString(name, "")
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether text contains at least one of the given substrings.
func ContainsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// IsDigits reports whether text is a non-empty run of ASCII digits.
func IsDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
