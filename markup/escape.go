package markup

import "strings"

// Escape sequences recognised in literal text.
const (
	escBracketLeft  = "&bl;"
	escBracketRight = "&br;"
	escAmpersand    = "&amp;"
)

var escaper = strings.NewReplacer("&", escAmpersand, "[", escBracketLeft, "]", escBracketRight)

// Escape makes text safe to embed in markup: it is rendered verbatim.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape decodes literal text.
//
// The passes run in a fixed order: &bl; then &br; then &amp;. A "&" that
// results from the last pass is never re-read, so "&amp;bl;" decodes to
// "&bl;", not "[".
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = strings.ReplaceAll(s, escBracketLeft, "[")
	s = strings.ReplaceAll(s, escBracketRight, "]")
	return strings.ReplaceAll(s, escAmpersand, "&")
}
