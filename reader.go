package vobject

import (
	"iter"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject/internal/constraints"
)

// ReadComponent parses the first component of s using the default parser
// and returns the input left after it.
// See [Parser.ReadComponent] for details.
func ReadComponent[T constraints.Byteseq](s T) (*Component, string, error) {
	return errtrace.Wrap3(defParser.ReadComponent(string(s)))
}

// ReadComponent parses the first component of s and returns the input left after it.
//
// Unlike [Parser.Parse], data after the component is not an error,
// so it can be used to read inputs holding several components one after another.
func (p *Parser) ReadComponent(s string) (*Component, string, error) {
	return errtrace.Wrap3(p.read(s))
}

// Components returns an iterator over the consecutive top-level components of s,
// parsed with the default parser.
// See [Parser.Components] for details.
func Components[T constraints.Byteseq](s T) iter.Seq2[*Component, error] {
	return defParser.Components(string(s))
}

// Components returns an iterator over the consecutive top-level components of s.
//
// In success case, it yields a [*Component] and nil error.
// If a component fails to parse, it yields nil and the error, then stops,
// because the parser can not find the start of the next component reliably.
// Whitespace between and after components is skipped.
// The offset of a yielded [*ParseError] is relative to the start of the failed component.
//
// Example:
//
//	for card, err := range vobject.Components(addressBook) {
//		if err != nil {
//			// handle error, the iteration is over
//			break
//		}
//		// use card
//	}
func (p *Parser) Components(s string) iter.Seq2[*Component, error] {
	return func(yield func(*Component, error) bool) {
		rest := strings.TrimLeft(s, " \t\r\n")
		for rest != "" {
			c, next, err := p.read(rest)
			if err != nil {
				yield(nil, errtrace.Wrap(err))
				return
			}
			if !yield(c, nil) {
				return
			}
			rest = strings.TrimLeft(next, " \t\r\n")
		}
	}
}
