package ical_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/vobject"
	"github.com/ghettovoice/vobject/ical"
)

const calendar = "BEGIN:VCALENDAR\n" +
	"VERSION:2.0\n" +
	"PRODID:http://www.example.com/calendarapplication/\n" +
	"METHOD:PUBLISH\n" +
	"BEGIN:VEVENT\n" +
	"UID:461092315540@example.com\n" +
	"ORGANIZER;CN=\"Alice Balder, Example Inc.\":MAILTO:alice@example.com\n" +
	"LOCATION:Somewhere\n" +
	"SUMMARY:Eine Kurzinfo\n" +
	"DESCRIPTION:Beschreibung des Termines\n" +
	"CLASS:PUBLIC\n" +
	"DTSTART:20060910T220000Z\n" +
	"DTEND:20060919T215900Z\n" +
	"DTSTAMP:20060812T125900Z\n" +
	"ATTENDEE;CN=Bob:mailto:bob@example.com\n" +
	"ATTENDEE;CN=Carol:mailto:carol@example.com\n" +
	"BEGIN:VALARM\n" +
	"ACTION:DISPLAY\n" +
	"TRIGGER:-PT15M\n" +
	"DESCRIPTION:Reminder\n" +
	"END:VALARM\n" +
	"END:VEVENT\n" +
	"BEGIN:VTODO\n" +
	"UID:todo-1@example.com\n" +
	"SUMMARY:Submit report\n" +
	"DUE:20060915T170000Z\n" +
	"PERCENT-COMPLETE:40\n" +
	"END:VTODO\n" +
	"BEGIN:VJOURNAL\n" +
	"UID:journal-1@example.com\n" +
	"DESCRIPTION:Notes\\, day one\n" +
	"END:VJOURNAL\n" +
	"END:VCALENDAR\n"

func TestParse(t *testing.T) {
	t.Parallel()

	cal, err := ical.Parse(calendar)
	if err != nil {
		t.Fatalf("ical.Parse(calendar) error = %v, want nil", err)
	}

	if got, ok := cal.Version(); !ok || got.Raw != "2.0" {
		t.Errorf("cal.Version() = %+v, %v, want 2.0, true", got, ok)
	}
	if got, ok := cal.ProdID(); !ok || got.Raw != "http://www.example.com/calendarapplication/" {
		t.Errorf("cal.ProdID() = %+v, %v, want product id, true", got, ok)
	}
	if got, ok := cal.Method(); !ok || got.Raw != "PUBLISH" {
		t.Errorf("cal.Method() = %+v, %v, want PUBLISH, true", got, ok)
	}
	if _, ok := cal.CalScale(); ok {
		t.Error("cal.CalScale() ok = true, want false")
	}

	events := slices.Collect(cal.Events())
	if len(events) != 1 {
		t.Fatalf("len(cal.Events()) = %d, want 1", len(events))
	}
	ev := events[0]

	org, ok := ev.Organizer()
	if !ok {
		t.Fatal("ev.Organizer() ok = false, want true")
	}
	if got, want := org.CommonName(), "Alice Balder, Example Inc."; got != want {
		t.Errorf("org.CommonName() = %q, want %q", got, want)
	}
	if got, want := org.Address(), "alice@example.com"; got != want {
		t.Errorf("org.Address() = %q, want %q", got, want)
	}
	if got, ok := ev.Summary(); !ok || vobject.ValueOf(got) != "Eine Kurzinfo" {
		t.Errorf("ev.Summary() = %+v, %v, want Eine Kurzinfo, true", got, ok)
	}
	if got, ok := ev.Location(); !ok || got.Raw != "Somewhere" {
		t.Errorf("ev.Location() = %+v, %v, want Somewhere, true", got, ok)
	}
	if got, ok := ev.DTStart(); !ok || got.Raw != "20060910T220000Z" {
		t.Errorf("ev.DTStart() = %+v, %v, want 20060910T220000Z, true", got, ok)
	}
	if got, ok := ev.DTEnd(); !ok || got.Raw != "20060919T215900Z" {
		t.Errorf("ev.DTEnd() = %+v, %v, want 20060919T215900Z, true", got, ok)
	}
	if _, ok := ev.Duration(); ok {
		t.Error("ev.Duration() ok = true, want false")
	}

	var attendees []string
	for _, a := range ev.Attendees() {
		attendees = append(attendees, a.CommonName()+" <"+a.Address()+">")
	}
	if want := []string{"Bob <bob@example.com>", "Carol <carol@example.com>"}; !cmp.Equal(attendees, want) {
		t.Errorf("ev.Attendees() = %q, want %q", attendees, want)
	}

	alarms := slices.Collect(ev.Alarms())
	if len(alarms) != 1 {
		t.Fatalf("len(ev.Alarms()) = %d, want 1", len(alarms))
	}
	if got, ok := alarms[0].Trigger(); !ok || got.Raw != "-PT15M" {
		t.Errorf("alarm.Trigger() = %+v, %v, want -PT15M, true", got, ok)
	}
	if got, ok := alarms[0].Action(); !ok || got.Raw != "DISPLAY" {
		t.Errorf("alarm.Action() = %+v, %v, want DISPLAY, true", got, ok)
	}

	todos := slices.Collect(cal.Todos())
	if len(todos) != 1 {
		t.Fatalf("len(cal.Todos()) = %d, want 1", len(todos))
	}
	if got, ok := todos[0].Due(); !ok || got.Raw != "20060915T170000Z" {
		t.Errorf("todo.Due() = %+v, %v, want 20060915T170000Z, true", got, ok)
	}
	if got, ok := todos[0].PercentComplete(); !ok || got.Raw != "40" {
		t.Errorf("todo.PercentComplete() = %+v, %v, want 40, true", got, ok)
	}

	journals := slices.Collect(cal.Journals())
	if len(journals) != 1 {
		t.Fatalf("len(cal.Journals()) = %d, want 1", len(journals))
	}
	if got, ok := journals[0].Description(); !ok || vobject.ValueOf(got) != "Notes, day one" {
		t.Errorf("journal.Description() = %+v, %v, want \"Notes, day one\", true", got, ok)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		comp    *vobject.Component
		wantErr error
	}{
		{"nil", nil, vobject.ErrInvalidArgument},
		{"calendar", vobject.NewComponent("VCALENDAR"), nil},
		{"vcard", vobject.NewComponent("VCARD"), ical.ErrNotCalendar},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := ical.New(c.comp)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("ical.New(comp) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
		})
	}
}

func TestAsEvent(t *testing.T) {
	t.Parallel()

	if _, err := ical.AsEvent(vobject.NewComponent("VTODO")); !errors.Is(err, ical.ErrNotCalendar) {
		t.Errorf("ical.AsEvent(vtodo) error = %v, want %v", err, ical.ErrNotCalendar)
	}
	if _, err := ical.AsTodo(vobject.NewComponent("VTODO")); err != nil {
		t.Errorf("ical.AsTodo(vtodo) error = %v, want nil", err)
	}
	if _, err := ical.AsJournal(vobject.NewComponent("VEVENT")); !errors.Is(err, ical.ErrNotCalendar) {
		t.Errorf("ical.AsJournal(vevent) error = %v, want %v", err, ical.ErrNotCalendar)
	}
}

func TestCalendar_AddEvent(t *testing.T) {
	t.Parallel()

	cal, err := ical.New(vobject.NewComponent(ical.CalendarName))
	if err != nil {
		t.Fatalf("ical.New(vcalendar) error = %v, want nil", err)
	}
	ev := ical.NewEvent()
	ev.Component().Set(vobject.NewProperty("SUMMARY", "Lunch; with Bob"))
	ev.Component().Set(vobject.NewProperty("UID", "1"))
	cal.AddEvent(ev)
	cal.AddEvent(nil)

	want := "BEGIN:VCALENDAR\r\n" +
		"BEGIN:VEVENT\r\n" +
		"SUMMARY:Lunch\\; with Bob\r\n" +
		"UID:1\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	if got := cal.String(); got != want {
		t.Errorf("cal.String() = %q, want %q", got, want)
	}

	cal2, err := ical.Parse(cal.String())
	if err != nil {
		t.Fatalf("ical.Parse(cal.String()) error = %v, want nil", err)
	}
	for ev := range cal2.Events() {
		if got, ok := ev.Summary(); !ok || vobject.ValueOf(got) != "Lunch; with Bob" {
			t.Errorf("ev.Summary() = %+v, %v, want \"Lunch; with Bob\", true", got, ok)
		}
	}
}
