// Package grammar provides RFC 5545 content line rules used to validate
// names and parameter values and to decide how parameter values are rendered.
package grammar

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/vobject/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func byteRange(key string, lo, hi byte) abnf.Operator {
	return abnf.Range(key, []byte{lo}, []byte{hi})
}

var (
	alpha = abnf.AltFirst(
		"ALPHA",
		byteRange("%x41-5A", 0x41, 0x5A),
		byteRange("%x61-7A", 0x61, 0x7A),
	)
	digit = byteRange("DIGIT", 0x30, 0x39)
	wsp   = abnf.AltFirst(
		"WSP",
		abnf.Literal("SP", []byte{0x20}),
		abnf.Literal("HTAB", []byte{0x09}),
	)
	// Any byte of a multi-byte UTF-8 sequence.
	nonUSASCII = byteRange("NON-US-ASCII", 0x80, 0xFF)

	// name = iana-token / x-name
	// iana-token = 1*(ALPHA / DIGIT / "-")
	name = abnf.Repeat1Inf(
		"name",
		abnf.AltFirst("name-char", alpha, digit, abnf.Literal("\"-\"", []byte{0x2D})),
	)

	// QSAFE-CHAR = WSP / %x21 / %x23-7E / NON-US-ASCII
	qsafeChar = abnf.AltFirst(
		"QSAFE-CHAR",
		wsp,
		abnf.Literal("%x21", []byte{0x21}),
		byteRange("%x23-7E", 0x23, 0x7E),
		nonUSASCII,
	)
	qsafeText = abnf.Repeat1Inf("1*QSAFE-CHAR", qsafeChar)

	// SAFE-CHAR = WSP / %x21 / %x23-2B / %x2D-39 / %x3C-7E / NON-US-ASCII
	safeChar = abnf.AltFirst(
		"SAFE-CHAR",
		wsp,
		abnf.Literal("%x21", []byte{0x21}),
		byteRange("%x23-2B", 0x23, 0x2B),
		byteRange("%x2D-39", 0x2D, 0x39),
		byteRange("%x3C-7E", 0x3C, 0x7E),
		nonUSASCII,
	)
	paramText = abnf.Repeat1Inf("paramtext", safeChar)
)

func match[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsName reports whether s is a valid component, property or parameter name.
func IsName[T constraints.Byteseq](s T) bool { return match(name, s) }

// IsParamText reports whether s can be rendered as a parameter value without quotes.
// The empty string is a valid paramtext.
func IsParamText[T constraints.Byteseq](s T) bool { return len(s) == 0 || match(paramText, s) }

// IsQSafe reports whether s can be rendered inside a quoted parameter value.
// The empty string is a valid quoted value.
func IsQSafe[T constraints.Byteseq](s T) bool { return len(s) == 0 || match(qsafeText, s) }

// QuoteParamValue returns s as is when it is a valid paramtext,
// otherwise it returns s wrapped in double quotes.
func QuoteParamValue(s string) string {
	if IsParamText(s) {
		return s
	}
	return "\"" + s + "\""
}
