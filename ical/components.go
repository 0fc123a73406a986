package ical

import (
	"iter"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vobject"
)

// entry holds the properties shared by events, to-dos and journal entries.
type entry struct {
	c *vobject.Component
}

// Component returns the underlying component.
func (e entry) Component() *vobject.Component { return e.c }

func (e entry) LogValue() slog.Value { return e.c.LogValue() }

func (e entry) UID() (UID, bool) { return vobject.Only[UID](e.c, "UID") }
func (e entry) DTStamp() (DTStamp, bool) { return vobject.Only[DTStamp](e.c, "DTSTAMP") }
func (e entry) DTStart() (DTStart, bool) { return vobject.Only[DTStart](e.c, "DTSTART") }
func (e entry) Summary() (Summary, bool) { return vobject.Only[Summary](e.c, "SUMMARY") }
func (e entry) Description() (Description, bool) { return vobject.Only[Description](e.c, "DESCRIPTION") }
func (e entry) Class() (Class, bool) { return vobject.Only[Class](e.c, "CLASS") }
func (e entry) Status() (Status, bool) { return vobject.Only[Status](e.c, "STATUS") }
func (e entry) URL() (URL, bool) { return vobject.Only[URL](e.c, "URL") }
func (e entry) RRule() (RRule, bool) { return vobject.Only[RRule](e.c, "RRULE") }
func (e entry) Organizer() (Organizer, bool) { return vobject.Only[Organizer](e.c, "ORGANIZER") }
func (e entry) Attendees() []Attendee { return vobject.All[Attendee](e.c, "ATTENDEE") }
func (e entry) Categories() []Categories { return vobject.All[Categories](e.c, "CATEGORIES") }

// Event is a VEVENT component.
type Event struct {
	entry
}

// NewEvent creates an empty event.
func NewEvent() *Event { return wrapEvent(vobject.NewComponent(EventName)) }

// AsEvent wraps the component. It returns an error wrapping [ErrNotCalendar]
// when the component name is not VEVENT.
func AsEvent(c *vobject.Component) (*Event, error) {
	if err := check(c, EventName); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return wrapEvent(c), nil
}

func wrapEvent(c *vobject.Component) *Event { return &Event{entry{c}} }

func (e *Event) DTEnd() (DTEnd, bool) { return vobject.Only[DTEnd](e.c, "DTEND") }
func (e *Event) Duration() (Duration, bool) { return vobject.Only[Duration](e.c, "DURATION") }
func (e *Event) Location() (Location, bool) { return vobject.Only[Location](e.c, "LOCATION") }
func (e *Event) Transp() (Transp, bool) { return vobject.Only[Transp](e.c, "TRANSP") }

// Alarms returns an iterator over the event alarms.
func (e *Event) Alarms() iter.Seq[*Alarm] { return subs(e.c, AlarmName, wrapAlarm) }

// Todo is a VTODO component.
type Todo struct {
	entry
}

// AsTodo wraps the component. It returns an error wrapping [ErrNotCalendar]
// when the component name is not VTODO.
func AsTodo(c *vobject.Component) (*Todo, error) {
	if err := check(c, TodoName); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return wrapTodo(c), nil
}

func wrapTodo(c *vobject.Component) *Todo { return &Todo{entry{c}} }

func (t *Todo) Due() (Due, bool) { return vobject.Only[Due](t.c, "DUE") }
func (t *Todo) Completed() (Completed, bool) { return vobject.Only[Completed](t.c, "COMPLETED") }
func (t *Todo) PercentComplete() (PercentComplete, bool) {
	return vobject.Only[PercentComplete](t.c, "PERCENT-COMPLETE")
}
func (t *Todo) Priority() (Priority, bool) { return vobject.Only[Priority](t.c, "PRIORITY") }
func (t *Todo) Location() (Location, bool) { return vobject.Only[Location](t.c, "LOCATION") }

// Alarms returns an iterator over the to-do alarms.
func (t *Todo) Alarms() iter.Seq[*Alarm] { return subs(t.c, AlarmName, wrapAlarm) }

// Journal is a VJOURNAL component.
type Journal struct {
	entry
}

// AsJournal wraps the component. It returns an error wrapping [ErrNotCalendar]
// when the component name is not VJOURNAL.
func AsJournal(c *vobject.Component) (*Journal, error) {
	if err := check(c, JournalName); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return wrapJournal(c), nil
}

func wrapJournal(c *vobject.Component) *Journal { return &Journal{entry{c}} }

// Alarm is a VALARM component.
type Alarm struct {
	c *vobject.Component
}

func wrapAlarm(c *vobject.Component) *Alarm { return &Alarm{c} }

// Component returns the underlying component.
func (a *Alarm) Component() *vobject.Component { return a.c }

func (a *Alarm) Action() (Action, bool) { return vobject.Only[Action](a.c, "ACTION") }
func (a *Alarm) Trigger() (Trigger, bool) { return vobject.Only[Trigger](a.c, "TRIGGER") }
func (a *Alarm) Description() (Description, bool) { return vobject.Only[Description](a.c, "DESCRIPTION") }
func (a *Alarm) Duration() (Duration, bool) { return vobject.Only[Duration](a.c, "DURATION") }
func (a *Alarm) Repeat() (Repeat, bool) { return vobject.Only[Repeat](a.c, "REPEAT") }
