package email

import (
	"net/url"
	"strings"
)

// uriComponentFixes turns url.QueryEscape output into what a browser's
// encodeURIComponent produces.
var uriComponentFixes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s the way mail clients expect inside a
// mailto query.
func EncodeURIComponent(s string) string {
	return uriComponentFixes.Replace(url.QueryEscape(s))
}

// ComposeMailto builds a mailto URI addressed to `to` with the given subject
// and body.
func ComposeMailto(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(to)
	b.WriteString("?subject=")
	b.WriteString(EncodeURIComponent(subject))
	b.WriteString("&body=")
	b.WriteString(EncodeURIComponent(body))
	return b.String()
}
