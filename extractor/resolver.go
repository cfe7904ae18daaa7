package extractor

import (
	"slices"
	"strings"

	"github.com/erraggy/oastsgen/internal/issues"
	"github.com/erraggy/oastsgen/internal/sourceorder"
	"github.com/erraggy/oastsgen/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

// resolver turns schemas into type nodes. During the components pass it owns
// the type registry; afterwards the registry is only read, and copies of the
// resolver with their own collector may run concurrently.
type resolver struct {
	schemas    openapi3.Schemas
	order      *sourceorder.Index
	diag       *issues.Collector
	types      *ir.Types
	inProgress map[string]bool
	failed     map[string]bool
	canInsert  bool
	logger     Logger
}

// withCollector returns a read-only copy of r reporting into diag.
func (r *resolver) withCollector(diag *issues.Collector) *resolver {
	cp := *r
	cp.diag = diag
	cp.canInsert = false
	return &cp
}

// resolve converts a schema or reference into a type reference. A non-empty
// scope is pushed for the duration of the call.
func (r *resolver) resolve(scope string, ref *openapi3.SchemaRef, at location) (ir.TypeRef, bool) {
	if scope != "" {
		defer r.diag.Push(scope)()
	}
	if ref == nil {
		r.diag.RequiredField("schema")
		return ir.TypeRef{}, false
	}
	if ref.Ref != "" {
		return r.reference(ref.Ref)
	}
	if ref.Value == nil {
		r.diag.RequiredField("schema")
		return ir.TypeRef{}, false
	}
	t, ok := r.schema(ref.Value, at)
	if !ok {
		return ir.TypeRef{}, false
	}
	return ir.Inline(t), true
}

// reference returns a symbolic reference to the named component, registering
// it first when registration is allowed. A name whose resolution is in
// progress is returned symbolically as well; it is registered once that
// resolution finishes.
func (r *resolver) reference(ref string) (ir.TypeRef, bool) {
	name := refName(ref)
	if r.types.Has(name) || r.inProgress[name] {
		return ir.Named(name), true
	}
	if !r.canInsert {
		r.diag.UnresolvedReference(name)
		return ir.TypeRef{}, false
	}
	if _, ok := r.define(name); !ok {
		return ir.TypeRef{}, false
	}
	return ir.Named(name), true
}

// deref returns the type node registered for ref, resolving it first when
// registration is allowed. Unlike reference it needs the node itself, so an
// in-progress name is a cycle.
func (r *resolver) deref(ref string) (ir.Type, bool) {
	name := refName(ref)
	if t, ok := r.types.Get(name); ok {
		return t, true
	}
	if r.inProgress[name] {
		r.diag.CyclicReference(name)
		return nil, false
	}
	if !r.canInsert {
		r.diag.UnresolvedReference(name)
		return nil, false
	}
	return r.define(name)
}

// define resolves the component schema called name and registers it.
func (r *resolver) define(name string) (ir.Type, bool) {
	if t, ok := r.types.Get(name); ok {
		return t, true
	}
	if r.inProgress[name] {
		r.diag.CyclicReference(name)
		return nil, false
	}
	// already reported
	if r.failed[name] {
		return nil, false
	}
	ref, ok := r.schemas[name]
	if !ok || ref == nil {
		r.diag.UnresolvedReference(name)
		return nil, false
	}

	mark := r.types.Len()
	r.inProgress[name] = true
	defer delete(r.inProgress, name)
	defer r.diag.Push(name)()

	var t ir.Type
	switch {
	case ref.Ref != "":
		t, ok = r.deref(ref.Ref)
	case ref.Value != nil:
		t, ok = r.schema(ref.Value, location{"components", "schemas", name})
	default:
		r.diag.RequiredField("schema")
		ok = false
	}
	if !ok {
		r.discard(name, mark)
		return nil, false
	}

	if r.types.Insert(name, t) {
		r.logger.Debug("registered type", KeyType, name)
	}
	t, _ = r.types.Get(name)
	return t, true
}

// discard marks name as failed and unregisters every type added since mark
// that refers to it, directly or through another discarded type. Those types
// were registered against name while it was still in progress.
func (r *resolver) discard(name string, mark int) {
	if r.failed == nil {
		r.failed = make(map[string]bool)
	}
	r.failed[name] = true

	added := r.types.Names()[mark:]
	dead := map[string]bool{name: true}
	for changed := true; changed; {
		changed = false
		for _, n := range added {
			if dead[n] {
				continue
			}
			t, _ := r.types.Get(n)
			if slices.ContainsFunc(ir.References(t), func(ref string) bool { return dead[ref] }) {
				dead[n] = true
				changed = true
			}
		}
	}

	for _, n := range added {
		if dead[n] && r.types.Remove(n) {
			r.failed[n] = true
			r.logger.Debug("discarded type", KeyType, n, "cause", name)
		}
	}
}

// schema dispatches on the declared kind of s.
func (r *resolver) schema(s *openapi3.Schema, at location) (ir.Type, bool) {
	if kinds := declaredTypes(s); len(kinds) > 0 {
		if len(kinds) == 1 {
			return r.typed(kinds[0], s, at)
		}
		members := make([]ir.TypeRef, 0, len(kinds))
		for _, k := range kinds {
			t, ok := r.typed(k, s, at)
			if !ok {
				return nil, false
			}
			members = append(members, ir.Inline(t))
		}
		return ir.Union{Members: members}, true
	}

	switch {
	case len(s.OneOf) > 0:
		return r.oneOf(s.OneOf, at.child("oneOf"))
	case len(s.AllOf) > 0:
		return r.allOf(s.AllOf, at.child("allOf"))
	case len(s.AnyOf) > 0:
		r.diag.Unsupported("`anyOf`")
		return ir.Any{}, true
	case s.Not != nil:
		r.diag.Unsupported("`not`")
		return ir.Any{}, true
	case len(s.Properties) > 0:
		return r.object(s, at)
	default:
		return ir.Any{}, true
	}
}

// declaredTypes returns the schema's type list without "null".
func declaredTypes(s *openapi3.Schema) []string {
	if s.Type == nil {
		return nil
	}
	var kinds []string
	for _, k := range *s.Type {
		if k != openapi3.TypeNull {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (r *resolver) typed(kind string, s *openapi3.Schema, at location) (ir.Type, bool) {
	switch kind {
	case openapi3.TypeString:
		return ir.NewEnum(stringVariants(s.Enum)), true
	case openapi3.TypeNumber, openapi3.TypeInteger:
		return ir.Number{}, true
	case openapi3.TypeBoolean:
		return ir.Boolean{}, true
	case openapi3.TypeObject:
		return r.object(s, at)
	case openapi3.TypeArray:
		return r.array(s, at)
	default:
		r.diag.InvalidValue("type", kind)
		return nil, false
	}
}

func stringVariants(values []any) []string {
	var variants []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			variants = append(variants, s)
		}
	}
	return variants
}

// object resolves every property, wrapping those not listed as required in
// Optional. Properties that fail are left out; an object left with no fields
// is Any.
func (r *resolver) object(s *openapi3.Schema, at location) (ir.Type, bool) {
	if len(s.Properties) == 0 {
		return ir.Any{}, true
	}
	props := at.child("properties")
	var fields []ir.Field
	for _, key := range ordered(r.order, s.Properties, props, nil) {
		t, ok := r.resolve(key, s.Properties[key], props.child(key))
		if !ok {
			continue
		}
		if !slices.Contains(s.Required, key) {
			t = ir.MakeOptional(t)
		}
		fields = append(fields, ir.Field{Name: key, Type: t})
	}
	if len(fields) == 0 {
		return ir.Any{}, true
	}
	return ir.Object{Fields: fields}, true
}

func (r *resolver) array(s *openapi3.Schema, at location) (ir.Type, bool) {
	if s.Items == nil {
		r.diag.RequiredField("items")
		return nil, false
	}
	elem, ok := r.resolve("", s.Items, at.child("items"))
	if !ok {
		return nil, false
	}
	return ir.Array{Elem: elem}, true
}

func (r *resolver) oneOf(refs openapi3.SchemaRefs, at location) (ir.Type, bool) {
	members := make([]ir.TypeRef, 0, len(refs))
	for i, ref := range refs {
		t, ok := r.resolve("", ref, at.index(i))
		if !ok {
			return nil, false
		}
		members = append(members, t)
	}
	return ir.Union{Members: members}, true
}

// refName returns the trailing segment of a JSON pointer reference.
func refName(ref string) string {
	if i := strings.LastIndexAny(ref, "/#"); i >= 0 {
		ref = ref[i+1:]
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(ref)
}
