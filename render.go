package vobject

import (
	"io"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject/internal/ioutil"
	"github.com/ghettovoice/vobject/internal/util"
)

const (
	crlf = "\r\n"
	// maxLineLen is the content line length limit in bytes, line break excluded.
	maxLineLen = 75
	foldSep    = crlf + " "
)

// FoldLine folds s into chunks of at most 75 bytes joined by CRLF and a single space.
// A chunk never ends inside a multi-byte UTF-8 sequence.
// The input is expected to be unfolded, that is without CR and LF.
func FoldLine(s string) string {
	if len(s) <= maxLineLen {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(s)/maxLineLen*len(foldSep))
	for len(s) > maxLineLen {
		n := maxLineLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		if n == 0 {
			// not a valid UTF-8 text, cut at the limit
			n = maxLineLen
		}
		sb.WriteString(s[:n])
		sb.WriteString(foldSep)
		s = s[n:]
	}
	sb.WriteString(s)
	return sb.String()
}

// Write renders the component tree to its wire text.
func Write(c *Component) string {
	return c.String()
}

// WriteComponent is the same as [Write].
func WriteComponent(c *Component) string {
	return c.String()
}

// RenderTo writes the component tree to w.
//
// Output starts with BEGIN:NAME, then properties sorted by name
// (same-named properties in insertion order), then subcomponents and finally END:NAME.
// Every line ends with CRLF, property values are folded with [FoldLine].
func (c *Component) RenderTo(w io.Writer) (num int, err error) {
	if c == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint("BEGIN:", c.Name, crlf) //nolint:errcheck
	for _, name := range c.PropNames() {
		for _, p := range c.Props[name] {
			cw.Call(p.RenderTo)
		}
	}
	for _, sub := range c.Subcomponents {
		cw.Call(sub.RenderTo)
	}
	cw.Fprint("END:", c.Name, crlf) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// String renders the component tree to its wire text.
func (c *Component) String() string {
	if c == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb) //nolint:errcheck
	return sb.String()
}
