package vobject

// Field is a typed view over a property value used by accessor layers
// like the vcard and ical packages.
//
// Accessor packages declare their own named types based on Field
// (e.g. type Email vobject.Field) and read them with [Only] and [All].
type Field struct {
	// Raw is the escaped property value.
	Raw string
	// Params holds a copy of the property parameters.
	Params Params
}

// FieldType is the constraint satisfied by [Field] and any type defined on it.
type FieldType interface {
	~struct {
		Raw    string
		Params Params
	}
}

// Value returns the unescaped value.
func (f Field) Value() string { return UnescapeChars(f.Raw) }

// FieldOf converts the property to a field of type F.
func FieldOf[F FieldType](p *Property) F {
	return F(Field{Raw: p.RawValue, Params: p.Params.Clone()})
}

// Only returns the single property with the given name as a field of type F.
// It returns false when there is not exactly one such property.
func Only[F FieldType](c *Component, name string) (F, bool) {
	p, ok := c.GetOnly(name)
	if !ok {
		var zero F
		return zero, false
	}
	return FieldOf[F](p), true
}

// All returns all properties with the given name as fields of type F.
func All[F FieldType](c *Component, name string) []F {
	ps := c.GetAll(name)
	if len(ps) == 0 {
		return nil
	}
	fs := make([]F, len(ps))
	for i, p := range ps {
		fs[i] = FieldOf[F](p)
	}
	return fs
}

// ValueOf returns the unescaped value of any field type.
func ValueOf[F FieldType](f F) string { return Field(f).Value() }
