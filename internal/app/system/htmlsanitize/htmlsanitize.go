// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe HTML from user-supplied text before it
// is stored. Message bodies and descriptions are rendered back into the
// presentation layer, so script tags, event handlers, and javascript: URLs
// must never survive a round trip through the store.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows common user-generated formatting (bold, links, lists) and
// removes everything executable.
var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
