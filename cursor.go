package vobject

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// cursor walks the input as a sequence of logical characters,
// skipping CR bytes and folded line breaks (LF followed by SP or HTAB) on the fly.
//
// The position is a plain byte offset, so backtracking is an assignment.
type cursor struct {
	input string
	pos   int
	// breaks holds ascending offsets of LF bytes already resolved as real line breaks.
	breaks []int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// peekAt returns the logical character found at the given byte offset from the current position
// and the total width needed to consume it from the current position.
// ok is false at the end of input.
func (c *cursor) peekAt(offset int) (r rune, width int, ok bool) {
	r, _, width, ok = c.scan(offset)
	return r, width, ok
}

// scan is peekAt that also reports the absolute index where the character bytes start.
func (c *cursor) scan(offset int) (r rune, at, width int, ok bool) {
	r, at, end, ok := c.resolve(c.pos + offset)
	if !ok {
		return 0, 0, 0, false
	}
	return r, at, end - c.pos, true
}

// resolve returns the logical character starting at the absolute index i,
// the index of its bytes and the index right after it.
//
// An LF is folded when the logical character after it is SP or HTAB,
// so a run of LFs is resolved from the innermost one outwards.
// Once an LF of the run turns out to be a real line break, all outer ones are too,
// they are remembered in c.breaks and never rescanned.
func (c *cursor) resolve(i int) (r rune, at, end int, ok bool) {
	var buf [4]int
	lfs := buf[:0]
	for {
		for i < len(c.input) && c.input[i] == '\r' {
			i++
		}

		switch {
		case i >= len(c.input):
			r, at, end, ok = 0, 0, 0, false
		case c.input[i] == '\n' && !c.isBreak(i):
			lfs = append(lfs, i)
			i++
			continue
		case c.input[i] == '\n':
			r, at, end, ok = '\n', i, i+1, true
		default:
			var size int
			r, size = utf8.DecodeRuneInString(c.input[i:])
			at, end, ok = i, i+size, true
		}

		if len(lfs) == 0 {
			return r, at, end, ok
		}
		if ok && (r == ' ' || r == '\t') {
			// the innermost pending LF is folded together with the whitespace
			lfs = lfs[:len(lfs)-1]
			i = end
			continue
		}
		c.breaks = append(c.breaks[:0], lfs...)
		return '\n', lfs[0], lfs[0] + 1, true
	}
}

func (c *cursor) isBreak(i int) bool {
	_, ok := slices.BinarySearch(c.breaks, i)
	return ok
}

func (c *cursor) peek() (rune, int, bool) { return c.peekAt(0) }

func (c *cursor) eof() bool { return c.pos >= len(c.input) }

func (c *cursor) consumeChar() (rune, bool) {
	r, w, ok := c.peek()
	if !ok {
		return 0, false
	}
	c.pos += w
	return r, true
}

// consumeOnlyChar consumes the next character only if it equals r.
func (c *cursor) consumeOnlyChar(r rune) bool {
	if next, w, ok := c.peek(); ok && next == r {
		c.pos += w
		return true
	}
	return false
}

// consumeWhile consumes characters while fn holds and returns them unfolded.
// Contiguous runs of the input are copied as whole slices,
// a flush happens only when the cursor jumps over skipped bytes.
func (c *cursor) consumeWhile(fn func(rune) bool) string {
	var sb strings.Builder
	start := c.pos
	for {
		r, at, w, ok := c.scan(0)
		if !ok || !fn(r) {
			break
		}
		if at != c.pos {
			sb.WriteString(c.input[start:c.pos])
			start = at
		}
		c.pos += w
	}
	if sb.Len() == 0 {
		return c.input[start:c.pos]
	}
	sb.WriteString(c.input[start:c.pos])
	return sb.String()
}

func (c *cursor) rest() string {
	return c.input[min(c.pos, len(c.input)):]
}
