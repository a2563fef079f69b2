package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every HTML element
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes markup from user supplied free text. bluemonday
// escapes what it keeps, so the result is unescaped back to plain text.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
