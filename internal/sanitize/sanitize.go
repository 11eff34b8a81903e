// Package sanitize cleans raw form values before they are validated or stored.
package sanitize

import (
	"html"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	policy = bluemonday.StrictPolicy()
	upper  = cases.Upper(language.Und)
)

// dateLayouts are tried in order by Date.
var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// Escape HTML-escapes s and strips anything that survives as markup.
func Escape(s string) string {
	if s == "" {
		return s
	}
	return policy.Sanitize(html.EscapeString(s))
}

// EscapeTrim escapes s and removes surrounding whitespace.
func EscapeTrim(s string) string {
	return strings.TrimSpace(Escape(s))
}

// Date parses s as a calendar date. It returns nil when s is blank or not a date.
func Date(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// Capitalize upper-cases the first letter of s and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upper.String(string(r)) + s[size:]
}

// Checkbox reports whether a checkbox form value is ticked. Browsers send
// "on" by default; anything strconv.ParseBool accepts works too.
func Checkbox(s string) bool {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "on") {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
