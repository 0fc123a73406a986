package vobject

import (
	"log/slog"
	"strings"
	"unicode"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject/internal/constraints"
	"github.com/ghettovoice/vobject/internal/util"
	"github.com/ghettovoice/vobject/log"
)

// ParserOptions configure a [Parser].
type ParserOptions struct {
	// Logger receives debug records about recovered input problems,
	// like dropped malformed parameters.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Parser parses content line text into [Component] trees.
// It holds no state between calls and is safe for concurrent use.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a new [Parser].
// Options are optional, default options are used if nil (see [ParserOptions]).
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{log: opts.log()}
}

var defParser = &Parser{}

// Parse parses exactly one component from the given input s (string or []byte) using the default parser.
// See [Parser.Parse] for details.
//
// Example usage:
//
//	card, err := vobject.Parse("BEGIN:VCARD\r\nFN:Erika Mustermann\r\nEND:VCARD\r\n")
func Parse[T constraints.Byteseq](s T) (*Component, error) {
	return errtrace.Wrap2(defParser.Parse(string(s)))
}

// ParseComponent parses exactly one component from s.
// It is the same as [Parse] for string input.
func ParseComponent(s string) (*Component, error) {
	return errtrace.Wrap2(defParser.Parse(s))
}

// Parse parses exactly one component from s.
//
// Trailing blank lines are accepted, any other data left after the END line is an error.
// Note that whitespace after a line break starts a continuation line,
// so it is unfolded into the preceding value.
// On failure it returns nil and an error wrapping [ErrEmptyInput] or a [*ParseError].
func (p *Parser) Parse(s string) (*Component, error) {
	c, rest, err := p.read(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if strings.TrimSpace(rest) != "" {
		perr := newParseError(len(s)-len(rest), s, "trailing data: `%s`", util.Ellipsis(rest, 100))
		return nil, errtrace.Wrap(perr)
	}
	return c, nil
}

// ParseProperty parses exactly one content line using the default parser.
// See [Parser.ParseProperty] for details.
func ParseProperty(s string) (*Property, error) {
	return errtrace.Wrap2(defParser.ParseProperty(s))
}

// ParseProperty parses exactly one content line, folded or not.
// A single line break after the value is accepted, any other trailing data is an error.
func (p *Parser) ParseProperty(s string) (*Property, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ps := &parseState{cursor: newCursor(s), log: p.logger()}
	prop, err := ps.consumeProperty()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if rest := ps.rest(); strings.TrimSpace(rest) != "" {
		return nil, errtrace.Wrap(ps.errorf("trailing data: `%s`", util.Ellipsis(rest, 100)))
	}
	return prop, nil
}

// read parses the first component of s and returns the unconsumed remainder.
func (p *Parser) read(s string) (*Component, string, error) {
	if len(s) == 0 {
		return nil, "", errtrace.Wrap(ErrEmptyInput)
	}

	ps := &parseState{cursor: newCursor(s), log: p.logger()}
	c, err := ps.consumeComponent()
	if err != nil {
		return nil, "", errtrace.Wrap(err)
	}
	return c, ps.rest(), nil
}

func (p *Parser) logger() *slog.Logger {
	if p == nil || p.log == nil {
		return log.Default()
	}
	return p.log
}

// parseState is a single parse run over one input.
type parseState struct {
	*cursor
	log *slog.Logger
}

func (ps *parseState) errorf(format string, args ...any) error {
	return newParseError(ps.pos, ps.input, format, args...) //errtrace:skip
}

func (ps *parseState) expectChar(c rune) error {
	r, _, ok := ps.peek()
	if !ok {
		return errtrace.Wrap(ps.errorf("expected %q, found EOL", c))
	}
	if r != c {
		return errtrace.Wrap(ps.errorf("expected %q, found %q", c, r))
	}
	return nil
}

func (ps *parseState) consumeEOL() error {
	start := ps.pos
	if r, ok := ps.consumeChar(); ok && r == '\n' {
		return nil
	}
	ps.pos = start
	return errtrace.Wrap(ps.errorf("expected EOL"))
}

// terminateLine consumes one line break followed by any number of blank lines.
// At the end of input there is nothing to terminate.
func (ps *parseState) terminateLine() error {
	if ps.eof() {
		return nil
	}
	if err := ps.consumeEOL(); err != nil {
		return errtrace.Wrap(err)
	}
	for ps.consumeEOL() == nil {
	}
	return nil
}

func isNameChar(r rune) bool {
	return r == '-' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isQSafe reports whether r may appear in a quoted parameter value.
func isQSafe(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != 0x7F && r > 0x1F
}

func isSafe(r rune) bool {
	return isQSafe(r) && r != ';' && r != ':'
}

func (ps *parseState) consumeName() (string, error) {
	name := ps.consumeWhile(isNameChar)
	if name == "" {
		return "", errtrace.Wrap(ps.errorf("no property name found"))
	}
	return name, nil
}

// consumeGroup speculatively reads "group." and rewinds when there is none.
func (ps *parseState) consumeGroup() (string, bool) {
	start := ps.pos
	if name, err := ps.consumeName(); err == nil && ps.consumeOnlyChar('.') {
		return name, true
	}
	ps.pos = start
	return "", false
}

func (ps *parseState) consumeProperty() (*Property, error) {
	group, _ := ps.consumeGroup()
	name, err := ps.consumeName()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	params := ps.consumeParams()

	if err := ps.expectChar(':'); err != nil {
		return nil, errtrace.Wrap(err)
	}
	ps.consumeChar()

	value := ps.consumeWhile(func(r rune) bool { return r != '\r' && r != '\n' })
	if err := ps.terminateLine(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &Property{
		Name:     name,
		Params:   params,
		RawValue: value,
		Group:    group,
	}, nil
}

// consumeParams reads parameters while the next character is a semicolon.
// A malformed parameter stops the loop and is dropped.
func (ps *parseState) consumeParams() Params {
	var params Params
	for ps.consumeOnlyChar(';') {
		start := ps.pos
		name, value, err := ps.consumeParam()
		if err != nil {
			ps.log.Debug("drop malformed property parameter",
				"error", err,
				"offset", start,
				"buf", log.StringValue(ps.input[start:], 64),
			)
			break
		}
		if params == nil {
			params = make(Params)
		}
		params[name] = value
	}
	return params
}

func (ps *parseState) consumeParam() (name, value string, err error) {
	name, err = ps.consumeName()
	if err != nil {
		return "", "", errtrace.Wrap(ps.errorf("no param name found"))
	}

	start := ps.pos
	if !ps.consumeOnlyChar('=') {
		return name, "", nil
	}
	if value, err = ps.consumeParamValue(); err != nil {
		ps.pos = start
		return "", "", errtrace.Wrap(err)
	}
	return name, value, nil
}

func (ps *parseState) consumeParamValue() (string, error) {
	if !ps.consumeOnlyChar('"') {
		return ps.consumeWhile(isSafe), nil
	}

	value := ps.consumeWhile(isQSafe)
	if err := ps.expectChar('"'); err != nil {
		return "", errtrace.Wrap(err)
	}
	ps.consumeChar()
	return value, nil
}

func (ps *parseState) consumeComponent() (*Component, error) {
	start := ps.pos
	prop, err := ps.consumeProperty()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if prop.Name != "BEGIN" {
		ps.pos = start
		return nil, errtrace.Wrap(ps.errorf("expected BEGIN tag, found %s", prop.Name))
	}

	c := NewComponent(prop.RawValue)
	for {
		prev := ps.pos
		prop, err = ps.consumeProperty()
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		switch prop.Name {
		case "BEGIN":
			ps.pos = prev
			sub, err := ps.consumeComponent()
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			c.AddSubcomponent(sub)
		case "END":
			if prop.RawValue != c.Name {
				ps.pos = start
				return nil, errtrace.Wrap(ps.errorf("mismatched tags: BEGIN:%s vs END:%s", c.Name, prop.RawValue))
			}
			return c, nil
		default:
			c.Push(prop)
		}
	}
}
