// Package vcard provides typed read access to vCard components.
//
// A [Card] wraps a parsed VCARD component. Getters return field types
// defined on [vobject.Field], so the raw value and the parameters stay available:
//
//	card, err := vcard.Parse(data)
//	if err != nil {
//		// handle error
//	}
//	for _, tel := range card.Tel() {
//		fmt.Println(tel.Params.Has("WORK"), vobject.ValueOf(tel))
//	}
//
// Values are not interpreted beyond the structured name.
package vcard

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject"
	"github.com/ghettovoice/vobject/internal/constraints"
	"github.com/ghettovoice/vobject/internal/errorutil"
)

// ComponentName is the name of a vCard component.
const ComponentName = "VCARD"

// ErrNotVcard is returned when a component is not a VCARD.
const ErrNotVcard vobject.Error = "not a vcard"

// Card is a vCard component.
type Card struct {
	c *vobject.Component
}

// New wraps the component. It returns an error wrapping [ErrNotVcard]
// when the component name is not VCARD.
func New(c *vobject.Component) (*Card, error) {
	if c == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil component"))
	}
	if c.Name != ComponentName {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotVcard, "component "+c.Name))
	}
	return &Card{c}, nil
}

// Parse parses a single vCard from s.
func Parse[T constraints.Byteseq](s T) (*Card, error) {
	c, err := vobject.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(New(c))
}

// Component returns the underlying component.
func (card *Card) Component() *vobject.Component { return card.c }

// String renders the card.
func (card *Card) String() string { return card.c.String() }

func (card *Card) LogValue() slog.Value {
	if card == nil {
		return slog.Value{}
	}
	return card.c.LogValue()
}

// Getters below return all properties of the name for multi-valued fields
// and the only one for single-valued fields.
// A single-valued getter reports false when the property is absent or repeated.

func (card *Card) Adr() []Adr { return vobject.All[Adr](card.c, "ADR") }
func (card *Card) Anniversary() (Anniversary, bool) { return vobject.Only[Anniversary](card.c, "ANNIVERSARY") }
func (card *Card) BDay() (BDay, bool) { return vobject.Only[BDay](card.c, "BDAY") }
func (card *Card) Categories() []Category { return vobject.All[Category](card.c, "CATEGORIES") }
func (card *Card) ClientPIDMap() (ClientPIDMap, bool) { return vobject.Only[ClientPIDMap](card.c, "CLIENTPIDMAP") }
func (card *Card) Email() []Email { return vobject.All[Email](card.c, "EMAIL") }
func (card *Card) FullName() []FullName { return vobject.All[FullName](card.c, "FN") }
func (card *Card) Gender() (Gender, bool) { return vobject.Only[Gender](card.c, "GENDER") }
func (card *Card) Geo() []Geo { return vobject.All[Geo](card.c, "GEO") }
func (card *Card) IMPP() []IMPP { return vobject.All[IMPP](card.c, "IMPP") }
func (card *Card) Key() []Key { return vobject.All[Key](card.c, "KEY") }
func (card *Card) Lang() []Lang { return vobject.All[Lang](card.c, "LANG") }
func (card *Card) Logo() []Logo { return vobject.All[Logo](card.c, "LOGO") }
func (card *Card) Member() []Member { return vobject.All[Member](card.c, "MEMBER") }
func (card *Card) Name() (Name, bool) { return vobject.Only[Name](card.c, "N") }
func (card *Card) Nickname() []Nickname { return vobject.All[Nickname](card.c, "NICKNAME") }
func (card *Card) Note() []Note { return vobject.All[Note](card.c, "NOTE") }
func (card *Card) Org() []Org { return vobject.All[Org](card.c, "ORG") }
func (card *Card) Photo() []Photo { return vobject.All[Photo](card.c, "PHOTO") }
func (card *Card) ProdID() (ProdID, bool) { return vobject.Only[ProdID](card.c, "PRODID") }
func (card *Card) Related() []Related { return vobject.All[Related](card.c, "RELATED") }
func (card *Card) Rev() (Rev, bool) { return vobject.Only[Rev](card.c, "REV") }
func (card *Card) Role() []Role { return vobject.All[Role](card.c, "ROLE") }
func (card *Card) Sound() []Sound { return vobject.All[Sound](card.c, "SOUND") }
func (card *Card) Tel() []Tel { return vobject.All[Tel](card.c, "TEL") }
func (card *Card) Title() []Title { return vobject.All[Title](card.c, "TITLE") }
func (card *Card) TZ() []TZ { return vobject.All[TZ](card.c, "TZ") }
func (card *Card) UID() (UID, bool) { return vobject.Only[UID](card.c, "UID") }
func (card *Card) URL() []URL { return vobject.All[URL](card.c, "URL") }
func (card *Card) Version() (Version, bool) { return vobject.Only[Version](card.c, "VERSION") }
