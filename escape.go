package vobject

import "strings"

// EscapeChars escapes text for a property value.
//
// Replacements are applied in order:
// literal \N to newline, backslash, semicolon, comma, CRLF and LF.
// Note that a literal \N in s becomes \n, so it does not survive [UnescapeChars].
func EscapeChars(s string) string {
	s = strings.ReplaceAll(s, `\N`, "\n")
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// UnescapeChars unescapes a raw property value.
//
// Replacements are applied in order:
// \N to \n, CRLF to LF, \n to LF, \, \; and finally \\.
func UnescapeChars(s string) string {
	s = strings.ReplaceAll(s, `\N`, `\n`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\,`, ",")
	s = strings.ReplaceAll(s, `\;`, ";")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
