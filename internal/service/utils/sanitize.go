package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy strips every tag; user content is stored as plain text.
var contentPolicy = bluemonday.StrictPolicy()

// SanitizeContent removes HTML from user-submitted text and trims the
// surrounding whitespace. Content that is only markup comes out empty and
// fails the entity validation downstream.
func SanitizeContent(s string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(s))
}
