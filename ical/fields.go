package ical

import (
	"strings"

	"github.com/ghettovoice/vobject"
)

// Field types of an iCalendar. Each one holds the raw value and the parameters of a property,
// use [vobject.ValueOf] to get the unescaped value.
type (
	Action          vobject.Field
	Attendee        vobject.Field
	CalScale        vobject.Field
	Categories      vobject.Field
	Class           vobject.Field
	Completed       vobject.Field
	Description     vobject.Field
	DTEnd           vobject.Field
	DTStamp         vobject.Field
	DTStart         vobject.Field
	Due             vobject.Field
	Duration        vobject.Field
	Location        vobject.Field
	Method          vobject.Field
	Organizer       vobject.Field
	PercentComplete vobject.Field
	Priority        vobject.Field
	ProdID          vobject.Field
	Repeat          vobject.Field
	RRule           vobject.Field
	Status          vobject.Field
	Summary         vobject.Field
	Transp          vobject.Field
	Trigger         vobject.Field
	UID             vobject.Field
	URL             vobject.Field
	Version         vobject.Field
)

// CommonName returns the CN parameter of the organizer.
func (o Organizer) CommonName() string { return o.Params["CN"] }

// Address returns the calendar user address with the mailto scheme removed.
func (o Organizer) Address() string { return calAddress(o.Raw) }

// CommonName returns the CN parameter of the attendee.
func (a Attendee) CommonName() string { return a.Params["CN"] }

// Address returns the calendar user address with the mailto scheme removed.
func (a Attendee) Address() string { return calAddress(a.Raw) }

func calAddress(raw string) string {
	const scheme = "mailto:"
	if len(raw) >= len(scheme) && strings.EqualFold(raw[:len(scheme)], scheme) {
		return raw[len(scheme):]
	}
	return raw
}
