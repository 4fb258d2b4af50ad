package consolidate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatHeading turns a hyphen-separated identifier into a display heading:
// each hyphen-separated segment gets its first character uppercased and the
// segments are joined with single spaces. "clean-code-typescript" becomes
// "Clean Code Typescript". Empty input yields empty output.
func FormatHeading(raw string) string {
	if raw == "" {
		return ""
	}
	segments := strings.Split(raw, "-")
	for i, segment := range segments {
		segments[i] = upperFirst(segment)
	}
	return strings.Join(segments, " ")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
