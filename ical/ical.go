// Package ical provides typed read access to iCalendar components.
//
// A [Calendar] wraps a parsed VCALENDAR component and exposes its
// events, to-dos, journal entries and their alarms. Like the vcard package,
// getters return field types defined on [vobject.Field], values stay raw strings.
package ical

import (
	"iter"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject"
	"github.com/ghettovoice/vobject/internal/constraints"
	"github.com/ghettovoice/vobject/internal/errorutil"
)

// Component names.
const (
	CalendarName = "VCALENDAR"
	EventName    = "VEVENT"
	TodoName     = "VTODO"
	JournalName  = "VJOURNAL"
	AlarmName    = "VALARM"
)

// ErrNotCalendar is returned when a component has an unexpected name.
const ErrNotCalendar vobject.Error = "not an icalendar component"

func check(c *vobject.Component, name string) error {
	if c == nil {
		return errorutil.NewInvalidArgumentError("nil component") //errtrace:skip
	}
	if c.Name != name {
		return errorutil.NewWrapperError(ErrNotCalendar, "expected %s, got %s", name, c.Name) //errtrace:skip
	}
	return nil
}

// Calendar is a VCALENDAR component.
type Calendar struct {
	c *vobject.Component
}

// New wraps the component. It returns an error wrapping [ErrNotCalendar]
// when the component name is not VCALENDAR.
func New(c *vobject.Component) (*Calendar, error) {
	if err := check(c, CalendarName); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Calendar{c}, nil
}

// Parse parses a single calendar from s.
func Parse[T constraints.Byteseq](s T) (*Calendar, error) {
	c, err := vobject.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(New(c))
}

// Component returns the underlying component.
func (cal *Calendar) Component() *vobject.Component { return cal.c }

// String renders the calendar.
func (cal *Calendar) String() string { return cal.c.String() }

func (cal *Calendar) LogValue() slog.Value {
	if cal == nil {
		return slog.Value{}
	}
	return cal.c.LogValue()
}

func (cal *Calendar) Version() (Version, bool) { return vobject.Only[Version](cal.c, "VERSION") }
func (cal *Calendar) ProdID() (ProdID, bool) { return vobject.Only[ProdID](cal.c, "PRODID") }
func (cal *Calendar) Method() (Method, bool) { return vobject.Only[Method](cal.c, "METHOD") }
func (cal *Calendar) CalScale() (CalScale, bool) { return vobject.Only[CalScale](cal.c, "CALSCALE") }

// Events returns an iterator over the calendar events.
func (cal *Calendar) Events() iter.Seq[*Event] { return subs(cal.c, EventName, wrapEvent) }

// Todos returns an iterator over the calendar to-dos.
func (cal *Calendar) Todos() iter.Seq[*Todo] { return subs(cal.c, TodoName, wrapTodo) }

// Journals returns an iterator over the calendar journal entries.
func (cal *Calendar) Journals() iter.Seq[*Journal] { return subs(cal.c, JournalName, wrapJournal) }

// AddEvent appends the event to the calendar.
func (cal *Calendar) AddEvent(e *Event) {
	if e == nil {
		return
	}
	cal.c.AddSubcomponent(e.c)
}

func subs[T any](c *vobject.Component, name string, wrap func(*vobject.Component) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, sub := range c.Subcomponents {
			if sub.Name != name {
				continue
			}
			if !yield(wrap(sub)) {
				return
			}
		}
	}
}
