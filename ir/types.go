package ir

// Type is a node in the type model.
type Type interface {
	isType()
}

// Any accepts every value.
type Any struct{}

// Number is any numeric value, integer or floating point.
type Number struct{}

// String is a string value.
type String struct{}

// Boolean is a boolean value.
type Boolean struct{}

// Enum is a closed set of string literals. Build one with NewEnum.
type Enum struct {
	Variants []string
}

// Array is a list of Elem.
type Array struct {
	Elem TypeRef
}

// Field is one named member of an Object.
type Field struct {
	Name string
	Type TypeRef
}

// Object is a structural record with fields in declaration order.
type Object struct {
	Fields []Field
}

// Union accepts a value matching any member.
type Union struct {
	Members []TypeRef
}

// Optional is Inner or undefined. Build one with MakeOptional.
type Optional struct {
	Inner TypeRef
}

func (Any) isType()      {}
func (Number) isType()   {}
func (String) isType()   {}
func (Boolean) isType()  {}
func (Enum) isType()     {}
func (Array) isType()    {}
func (Object) isType()   {}
func (Union) isType()    {}
func (Optional) isType() {}

// NewEnum returns an Enum of variants, or String when there are none.
func NewEnum(variants []string) Type {
	if len(variants) == 0 {
		return String{}
	}
	return Enum{Variants: variants}
}

// Field returns the field called name.
func (o Object) Field(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// TypeRef is either an inline type node or the name of a registered type.
type TypeRef struct {
	// Name is set for symbolic references into the Types registry
	Name string
	// Inline is set for anonymous types
	Inline Type
}

// Named returns a symbolic reference to the registered type name.
func Named(name string) TypeRef {
	return TypeRef{Name: name}
}

// Inline wraps t as an anonymous type reference.
func Inline(t Type) TypeRef {
	return TypeRef{Inline: t}
}

// IsNamed reports whether r points into the registry.
func (r TypeRef) IsNamed() bool {
	return r.Name != ""
}

// IsZero reports whether r holds neither a name nor a type.
func (r TypeRef) IsZero() bool {
	return r.Name == "" && r.Inline == nil
}

// IsOptional reports whether r is an inline Optional.
func (r TypeRef) IsOptional() bool {
	_, ok := r.Inline.(Optional)
	return ok
}

// Unwrap returns the reference inside an Optional, or r itself.
func (r TypeRef) Unwrap() TypeRef {
	if opt, ok := r.Inline.(Optional); ok {
		return opt.Inner
	}
	return r
}

// MakeOptional wraps r in Optional unless it already is one.
func MakeOptional(r TypeRef) TypeRef {
	if r.IsOptional() {
		return r
	}
	return Inline(Optional{Inner: r})
}

// References returns the registry names t mentions directly or through its
// inline members. Named types are not followed.
func References(t Type) []string {
	var names []string
	var walk func(TypeRef)
	visit := func(t Type) {
		switch t := t.(type) {
		case Array:
			walk(t.Elem)
		case Object:
			for _, f := range t.Fields {
				walk(f.Type)
			}
		case Union:
			for _, m := range t.Members {
				walk(m)
			}
		case Optional:
			walk(t.Inner)
		}
	}
	walk = func(r TypeRef) {
		if r.IsNamed() {
			names = append(names, r.Name)
			return
		}
		visit(r.Inline)
	}
	visit(t)
	return names
}
