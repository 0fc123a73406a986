package vobject

import (
	"encoding/json"
	"log/slog"
	"maps"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject/internal/grammar"
	"github.com/ghettovoice/vobject/internal/util"
)

// Component represents a BEGIN:NAME ... END:NAME block.
//
// Properties are grouped by name, every group keeps the insertion order
// of its properties. There is no ordering between different names.
type Component struct {
	// Name is the component type, e.g. "VCARD" or "VEVENT".
	Name string
	// Props maps a property name to the properties with that name.
	Props map[string][]*Property
	// Subcomponents are the nested components in order of appearance.
	Subcomponents []*Component
}

// NewComponent creates an empty component.
func NewComponent(name string) *Component {
	return &Component{
		Name:  name,
		Props: make(map[string][]*Property),
	}
}

// Push appends the property, other same-named properties are kept.
func (c *Component) Push(p *Property) {
	if p == nil {
		return
	}
	if c.Props == nil {
		c.Props = make(map[string][]*Property)
	}
	c.Props[p.Name] = append(c.Props[p.Name], p)
}

// Set sets the property, other same-named properties are removed.
func (c *Component) Set(p *Property) {
	if p == nil {
		return
	}
	if c.Props == nil {
		c.Props = make(map[string][]*Property)
	}
	c.Props[p.Name] = []*Property{p}
}

// GetOnly returns the property with the given name.
// It returns false if there is not exactly one such property.
func (c *Component) GetOnly(name string) (*Property, bool) {
	if c == nil {
		return nil, false
	}
	if ps := c.Props[name]; len(ps) == 1 {
		return ps[0], true
	}
	return nil, false
}

// GetAll returns all properties with the given name in insertion order.
// The returned slice is a copy, it is empty if there are none.
func (c *Component) GetAll(name string) []*Property {
	if c == nil {
		return nil
	}
	return slices.Clone(c.Props[name])
}

// Pop removes and returns the last property with the given name.
func (c *Component) Pop(name string) (*Property, bool) {
	if c == nil {
		return nil, false
	}
	ps := c.Props[name]
	if len(ps) == 0 {
		return nil, false
	}
	p := ps[len(ps)-1]
	if len(ps) == 1 {
		delete(c.Props, name)
	} else {
		c.Props[name] = ps[:len(ps)-1]
	}
	return p, true
}

// Remove removes and returns all properties with the given name.
func (c *Component) Remove(name string) ([]*Property, bool) {
	if c == nil {
		return nil, false
	}
	ps, ok := c.Props[name]
	if !ok {
		return nil, false
	}
	delete(c.Props, name)
	return ps, true
}

// PropNames returns the names of the present properties in sorted order.
func (c *Component) PropNames() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.Props))
}

// AddSubcomponent appends a nested component.
func (c *Component) AddSubcomponent(sub *Component) {
	if sub == nil {
		return
	}
	c.Subcomponents = append(c.Subcomponents, sub)
}

// GetSubcomponents returns the nested components with the given name in order of appearance.
func (c *Component) GetSubcomponents(name string) []*Component {
	if c == nil {
		return nil
	}
	var subs []*Component
	for _, sub := range c.Subcomponents {
		if sub.Name == name {
			subs = append(subs, sub)
		}
	}
	return subs
}

// Clone returns a deep copy of the component tree.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}

	c2 := &Component{
		Name:  c.Name,
		Props: make(map[string][]*Property, len(c.Props)),
	}
	for k, ps := range c.Props {
		ps2 := make([]*Property, len(ps))
		for i := range ps {
			ps2[i] = ps[i].Clone()
		}
		c2.Props[k] = ps2
	}
	if c.Subcomponents != nil {
		c2.Subcomponents = make([]*Component, len(c.Subcomponents))
		for i := range c.Subcomponents {
			c2.Subcomponents[i] = c.Subcomponents[i].Clone()
		}
	}
	return c2
}

// Equal compares the component tree with another one.
//
// Component names are compared case-insensitively,
// properties are compared per name in insertion order (see [Property.Equal]),
// subcomponents are compared in order.
func (c *Component) Equal(val any) bool {
	var other *Component
	switch v := val.(type) {
	case Component:
		other = &v
	case *Component:
		other = v
	default:
		return false
	}

	if c == other {
		return true
	} else if c == nil || other == nil {
		return false
	}

	if !util.EqFold(c.Name, other.Name) ||
		len(c.Props) != len(other.Props) ||
		len(c.Subcomponents) != len(other.Subcomponents) {
		return false
	}
	for k, ps := range c.Props {
		ops, ok := other.Props[k]
		if !ok || !slices.EqualFunc(ps, ops, func(p1, p2 *Property) bool { return p1.Equal(p2) }) {
			return false
		}
	}
	return slices.EqualFunc(c.Subcomponents, other.Subcomponents, func(s1, s2 *Component) bool {
		return s1.Equal(s2)
	})
}

// IsValid checks names of the component, its properties and subcomponents.
func (c *Component) IsValid() bool {
	if c == nil || !grammar.IsName(c.Name) {
		return false
	}
	for _, ps := range c.Props {
		for _, p := range ps {
			if !p.IsValid() {
				return false
			}
		}
	}
	for _, sub := range c.Subcomponents {
		if !sub.IsValid() {
			return false
		}
	}
	return true
}

func (c *Component) LogValue() slog.Value {
	if c == nil {
		return slog.Value{}
	}

	var nprops int
	for _, ps := range c.Props {
		nprops += len(ps)
	}
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.Int("props", nprops),
		slog.Int("subcomponents", len(c.Subcomponents)),
	)
}

// MarshalJSON encodes the component as a JSON string holding its wire text.
func (c *Component) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(c.String()))
}

var zeroComponent Component

// UnmarshalJSON decodes the component from a JSON string holding its wire text.
// JSON null resets the component.
func (c *Component) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	if s == nil {
		*c = zeroComponent
		return nil
	}

	c2, err := Parse(*s)
	if err != nil {
		*c = zeroComponent
		return errtrace.Wrap(err)
	}
	*c = *c2
	return nil
}
