package vobject

import (
	"encoding/json"
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject/internal/grammar"
	"github.com/ghettovoice/vobject/internal/ioutil"
	"github.com/ghettovoice/vobject/internal/util"
)

// Property represents a single content line: [group.]NAME[;PARAM[=VALUE]]*:VALUE.
type Property struct {
	// Name is the property name as written, e.g. "FN".
	Name string
	// Params holds the property parameters.
	Params Params
	// RawValue is the value exactly as it appears after unfolding, still escaped.
	RawValue string
	// Group is the optional group prefix, e.g. "foo" in "foo.FN:Markus".
	// Empty means no group.
	Group string
}

// NewProperty creates a property from the unescaped value.
func NewProperty(name, value string) *Property {
	return &Property{
		Name:     name,
		RawValue: EscapeChars(value),
	}
}

// Value returns the unescaped value.
func (p *Property) Value() string {
	if p == nil {
		return ""
	}
	return UnescapeChars(p.RawValue)
}

// IsValid checks the property name, group and parameters.
func (p *Property) IsValid() bool {
	return p != nil &&
		grammar.IsName(p.Name) &&
		(p.Group == "" || grammar.IsName(p.Group)) &&
		p.Params.IsValid()
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	p2 := *p
	p2.Params = p.Params.Clone()
	return &p2
}

// Equal compares the property with another one.
// Names and groups are compared case-insensitively, values and parameters exactly.
func (p *Property) Equal(val any) bool {
	var other *Property
	switch v := val.(type) {
	case Property:
		other = &v
	case *Property:
		other = v
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}

	return util.EqFold(p.Name, other.Name) &&
		util.EqFold(p.Group, other.Group) &&
		p.RawValue == other.RawValue &&
		p.Params.Equal(other.Params)
}

// RenderTo writes the content line with folded value and CRLF terminator to w.
func (p *Property) RenderTo(w io.Writer) (num int, err error) {
	if p == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(p.head())             //nolint:errcheck
	cw.WriteString(FoldLine(p.RawValue)) //nolint:errcheck
	cw.WriteString(crlf)                 //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// head builds the content line part preceding the value, including the colon.
func (p *Property) head() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if p.Group != "" {
		sb.WriteString(p.Group)
		sb.WriteByte('.')
	}
	sb.WriteString(p.Name)
	for _, k := range p.Params.Keys() {
		sb.WriteByte(';')
		sb.WriteString(k)
		if v := p.Params[k]; v != "" {
			sb.WriteByte('=')
			sb.WriteString(grammar.QuoteParamValue(v))
		}
	}
	sb.WriteByte(':')
	return sb.String()
}

// String returns the unfolded content line.
func (p *Property) String() string {
	if p == nil {
		return ""
	}
	return p.head() + p.RawValue
}

func (p *Property) LogValue() slog.Value {
	if p == nil {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("name", p.Name))
	if p.Group != "" {
		attrs = append(attrs, slog.String("group", p.Group))
	}
	if len(p.Params) > 0 {
		attrs = append(attrs, slog.Any("params", map[string]string(p.Params)))
	}
	attrs = append(attrs, slog.String("value", util.Ellipsis(p.RawValue, 64)))
	return slog.GroupValue(attrs...)
}

// MarshalJSON encodes the property as a JSON string holding the unfolded content line.
func (p *Property) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(p.String()))
}

// UnmarshalJSON decodes the property from a JSON string holding a content line.
// JSON null resets the property.
func (p *Property) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	if s == nil {
		*p = Property{}
		return nil
	}

	p2, err := ParseProperty(*s)
	if err != nil {
		*p = Property{}
		return errtrace.Wrap(err)
	}
	*p = *p2
	return nil
}
