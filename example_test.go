package vobject_test

import (
	"fmt"
	"strings"

	"github.com/ghettovoice/vobject"
)

func ExampleParse() {
	card, err := vobject.Parse("BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN:Erika Mustermann\r\n" +
		"TEL;TYPE=work:+49 221 9999123\r\n" +
		"TEL;TYPE=home:+49 221 1234567\r\n" +
		"NOTE:Line one\\nLine two\\, continued\r\n" +
		"END:VCARD\r\n")
	if err != nil {
		fmt.Println(err)
		return
	}

	fn, _ := card.GetOnly("FN")
	fmt.Println(fn.Value())
	for _, tel := range card.GetAll("TEL") {
		fmt.Println(tel.Params["TYPE"], tel.Value())
	}
	note, _ := card.GetOnly("NOTE")
	fmt.Println(note.Value())
	// Output:
	// Erika Mustermann
	// work +49 221 9999123
	// home +49 221 1234567
	// Line one
	// Line two, continued
}

func ExampleWrite() {
	card := vobject.NewComponent("VCARD")
	card.Push(vobject.NewProperty("VERSION", "4.0"))
	card.Push(vobject.NewProperty("FN", "Mustermann, Erika"))
	card.Push(&vobject.Property{
		Name:     "EMAIL",
		Params:   vobject.Params{"TYPE": "work"},
		RawValue: "erika@example.com",
	})

	// content lines end with CRLF
	fmt.Print(strings.ReplaceAll(vobject.Write(card), "\r\n", "\n"))
	// Output:
	// BEGIN:VCARD
	// EMAIL;TYPE=work:erika@example.com
	// FN:Mustermann\, Erika
	// VERSION:4.0
	// END:VCARD
}

func ExampleComponents() {
	book := "BEGIN:VCARD\r\nFN:One\r\nEND:VCARD\r\nBEGIN:VCARD\r\nFN:Two\r\nEND:VCARD\r\n"
	for card, err := range vobject.Components(book) {
		if err != nil {
			fmt.Println(err)
			break
		}
		fn, _ := card.GetOnly("FN")
		fmt.Println(fn.Value())
	}
	// Output:
	// One
	// Two
}
