package vobject_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/vobject"
)

const addressBook = "BEGIN:VCARD\r\nFN:One\r\nEND:VCARD\r\n" +
	"\r\n" +
	"BEGIN:VCARD\r\nFN:Two\r\nEND:VCARD\r\n" +
	"BEGIN:VCARD\r\nFN:Three\r\nEND:VCARD\r\n\r\n"

func TestReadComponent(t *testing.T) {
	t.Parallel()

	c, rest, err := vobject.ReadComponent(addressBook)
	if err != nil {
		t.Fatalf("vobject.ReadComponent(addressBook) error = %v, want nil", err)
	}
	if fn, ok := c.GetOnly("FN"); !ok || fn.RawValue != "One" {
		t.Errorf("c.GetOnly(\"FN\") = %+v, %v, want One, true", fn, ok)
	}
	if want := addressBook[len("BEGIN:VCARD\r\nFN:One\r\nEND:VCARD\r\n\r\n"):]; rest != want {
		t.Errorf("vobject.ReadComponent(addressBook) rest = %q, want %q", rest, want)
	}

	if _, _, err := vobject.ReadComponent([]byte{}); !errors.Is(err, vobject.ErrEmptyInput) {
		t.Errorf("vobject.ReadComponent(empty) error = %v, want %v", err, vobject.ErrEmptyInput)
	}
}

func TestComponents(t *testing.T) {
	t.Parallel()

	var names []string
	for c, err := range vobject.Components(addressBook) {
		if err != nil {
			t.Fatalf("vobject.Components(addressBook) error = %v, want nil", err)
		}
		fn, _ := c.GetOnly("FN")
		names = append(names, fn.Value())
	}
	if want := []string{"One", "Two", "Three"}; len(names) != len(want) ||
		names[0] != want[0] || names[1] != want[1] || names[2] != want[2] {
		t.Errorf("vobject.Components(addressBook) names = %q, want %q", names, want)
	}
}

func TestComponents_Break(t *testing.T) {
	t.Parallel()

	var n int
	for range vobject.Components(addressBook) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations = %d, want 1", n)
	}
}

func TestComponents_Error(t *testing.T) {
	t.Parallel()

	input := "BEGIN:VCARD\nFN:One\nEND:VCARD\nBEGIN:VCARD\nFN:Two\nEND:VCALENDAR\nBEGIN:VCARD\nFN:Three\nEND:VCARD\n"

	var (
		got  []*vobject.Component
		errs []error
	)
	for c, err := range vobject.Components(input) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, c)
	}
	if len(got) != 1 {
		t.Errorf("len(components) = %d, want 1", len(got))
	}
	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d, want 1", len(errs))
	}

	var perr *vobject.ParseError
	if !errors.As(errs[0], &perr) {
		t.Fatalf("err = %T, want *vobject.ParseError", errs[0])
	}
	if perr.Pos != 0 {
		t.Errorf("perr.Pos = %d, want 0", perr.Pos)
	}
}

func TestComponents_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "\r\n\r\n", " \t\n"} {
		for c, err := range vobject.Components(in) {
			t.Errorf("vobject.Components(%q) yielded %+v, %v, want nothing", in, c, err)
		}
	}
}
