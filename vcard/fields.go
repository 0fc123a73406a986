package vcard

import (
	"strings"

	"github.com/ghettovoice/vobject"
)

// Field types of a vCard. Each one holds the raw value and the parameters of a property,
// use [vobject.ValueOf] to get the unescaped value.
type (
	Adr          vobject.Field
	Anniversary  vobject.Field
	BDay         vobject.Field
	Category     vobject.Field
	ClientPIDMap vobject.Field
	Email        vobject.Field
	FullName     vobject.Field
	Gender       vobject.Field
	Geo          vobject.Field
	IMPP         vobject.Field
	Key          vobject.Field
	Lang         vobject.Field
	Logo         vobject.Field
	Member       vobject.Field
	Name         vobject.Field
	Nickname     vobject.Field
	Note         vobject.Field
	Org          vobject.Field
	Photo        vobject.Field
	ProdID       vobject.Field
	Related      vobject.Field
	Rev          vobject.Field
	Role         vobject.Field
	Sound        vobject.Field
	Tel          vobject.Field
	Title        vobject.Field
	TZ           vobject.Field
	UID          vobject.Field
	URL          vobject.Field
	Version      vobject.Field
)

// Structured name component indexes.
const (
	nameFamily = iota
	nameGiven
	nameAdditional
	namePrefixes
	nameSuffixes
)

// FamilyName returns the first component of the structured name.
func (n Name) FamilyName() (string, bool) { return n.part(nameFamily) }

// GivenName returns the second component of the structured name.
func (n Name) GivenName() (string, bool) { return n.part(nameGiven) }

// AdditionalNames returns the third component of the structured name.
func (n Name) AdditionalNames() (string, bool) { return n.part(nameAdditional) }

// HonorificPrefixes returns the fourth component of the structured name.
func (n Name) HonorificPrefixes() (string, bool) { return n.part(namePrefixes) }

// HonorificSuffixes returns the fifth component of the structured name.
func (n Name) HonorificSuffixes() (string, bool) { return n.part(nameSuffixes) }

func (n Name) part(i int) (string, bool) {
	parts := SplitStructured(n.Raw)
	if i >= len(parts) {
		return "", false
	}
	return parts[i], true
}

// Address component indexes.
const (
	_ = iota // post office box
	_        // extended address
	adrStreet
	adrLocality
	adrRegion
	adrPostalCode
	adrCountry
)

// Parts returns the unescaped components of the address:
// post office box, extended address, street, locality, region, postal code and country.
// Missing trailing components are empty.
func (a Adr) Parts() [7]string {
	var out [7]string
	copy(out[:], SplitStructured(a.Raw))
	return out
}

// Street returns the street address.
func (a Adr) Street() string { return a.Parts()[adrStreet] }

// Locality returns the city.
func (a Adr) Locality() string { return a.Parts()[adrLocality] }

// Region returns the state or province.
func (a Adr) Region() string { return a.Parts()[adrRegion] }

// PostalCode returns the postal code.
func (a Adr) PostalCode() string { return a.Parts()[adrPostalCode] }

// Country returns the country name.
func (a Adr) Country() string { return a.Parts()[adrCountry] }

// SplitStructured splits a raw structured value at unescaped semicolons
// and unescapes every component.
func SplitStructured(raw string) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case ';':
			parts = append(parts, vobject.UnescapeChars(raw[start:i]))
			start = i + 1
		}
	}
	return append(parts, vobject.UnescapeChars(raw[start:]))
}

// Types returns the values of the TYPE parameter split at commas
// together with the vCard 2.1 style bare parameters like WORK or VOICE.
func Types[F vobject.FieldType](f F) []string {
	fld := vobject.Field(f)
	var types []string
	for _, k := range fld.Params.Keys() {
		v := fld.Params[k]
		switch {
		case strings.EqualFold(k, "TYPE"):
			for t := range strings.SplitSeq(strings.Trim(v, `"`), ",") {
				if t != "" {
					types = append(types, t)
				}
			}
		case v == "":
			types = append(types, k)
		}
	}
	return types
}
