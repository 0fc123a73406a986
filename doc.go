// Package vobject parses and renders the content line format shared by
// vCard (RFC 6350) and iCalendar (RFC 5545).
//
// # Overview
//
// A document is a tree of [Component] values. Each component is a
// BEGIN:NAME ... END:NAME block holding [Property] values and nested components.
// A property is a single logical content line:
//
//	[group.]NAME[;PARAM[=VALUE]]*:VALUE
//
// Properties keep their value exactly as written after unfolding ([Property.RawValue]),
// use [Property.Value] or [UnescapeChars] to get the text and [NewProperty] or
// [EscapeChars] to build one from text.
//
// # Parsing
//
// Use [Parse] to read exactly one component from string or []byte input:
//
//	card, err := vobject.Parse(data)
//	if err != nil {
//		var perr *vobject.ParseError
//		if errors.As(err, &perr) {
//			// perr.Pos is the byte offset where parsing stopped
//		}
//		return err
//	}
//	fn, ok := card.GetOnly("FN")
//
// The parser is lenient about line endings: CRLF and bare LF are both accepted,
// blank lines are skipped and continuation lines (a line break followed by a space or tab)
// are unfolded on the fly, even inside property and parameter names.
// Parameter values may be quoted, a parameter without a value (like WORK in "TEL;WORK:...")
// gets an empty value. A malformed trailing parameter is dropped and reported
// to the parser logger at debug level, see [ParserOptions].
//
// Use [ReadComponent] or [Components] for inputs holding several components one after another.
//
// # Rendering
//
// [Write] and [Component.RenderTo] render a tree back to text.
// Every line ends with CRLF and values longer than 75 bytes are folded with [FoldLine]
// without splitting multi-byte characters.
// Properties are rendered sorted by name, same-named properties keep their insertion order,
// so parsing the rendered text gives an equal tree.
//
// # Typed access
//
// [Field], [Only] and [All] build typed views over properties.
// The vcard and ical subpackages use them to provide accessors for well-known properties.
package vobject
