package extractor

import (
	"testing"

	"github.com/erraggy/oastsgen/internal/issues"
	"github.com/erraggy/oastsgen/ir"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfReferenceThroughField(t *testing.T) {
	children := schemaOf("array")
	children.Items = ref("Tree")
	r := newTestResolver(openapi3.Schemas{
		"Tree": inline(object([]string{"value"}, map[string]*openapi3.SchemaRef{
			"value":    inline(schemaOf("string")),
			"children": inline(children),
		})),
	})

	tree, ok := r.define("Tree")
	require.True(t, ok)
	assert.Equal(t, 0, r.diag.Len())
	assert.Equal(t, ir.Object{Fields: []ir.Field{
		{Name: "children", Type: ir.MakeOptional(ir.Inline(ir.Array{Elem: ir.Named("Tree")}))},
		{Name: "value", Type: ir.Inline(ir.String{})},
	}}, tree)
	assert.Equal(t, []string{"Tree"}, r.types.Names())
	assert.Empty(t, r.inProgress)
}

func TestMutualReferenceThroughFields(t *testing.T) {
	r := newTestResolver(openapi3.Schemas{
		"A": inline(object(nil, map[string]*openapi3.SchemaRef{"b": ref("B")})),
		"B": inline(object(nil, map[string]*openapi3.SchemaRef{"a": ref("A")})),
	})

	_, ok := r.define("A")
	require.True(t, ok)
	assert.Equal(t, 0, r.diag.Len())
	assert.Equal(t, []string{"B", "A"}, r.types.Names())

	b, _ := r.types.Get("B")
	assert.Equal(t, ir.Object{Fields: []ir.Field{{Name: "a", Type: ir.MakeOptional(ir.Named("A"))}}}, b)
}

func TestAliasCycleFailsFast(t *testing.T) {
	r := newTestResolver(openapi3.Schemas{
		"A": ref("B"),
		"B": ref("A"),
	})

	_, ok := r.define("A")
	assert.False(t, ok)
	require.Equal(t, 1, r.diag.Len())
	issue := r.diag.Issues()[0]
	assert.Equal(t, issues.KindCyclicReference, issue.Kind)
	assert.Equal(t, "A", issue.Field)
	assert.Equal(t, "A.B", issue.Path)
	assert.Equal(t, 0, r.types.Len())
}

func TestAllOfOverInProgressNameFailsFast(t *testing.T) {
	r := newTestResolver(openapi3.Schemas{
		"Loop": allOf(ref("Loop")),
	})
	_, ok := r.define("Loop")
	assert.False(t, ok)
	assert.Equal(t, []issues.Kind{issues.KindCyclicReference}, kinds(r.diag))
}

func TestAliasCopiesTarget(t *testing.T) {
	r := newTestResolver(openapi3.Schemas{
		"Name":  inline(schemaOf("string")),
		"Alias": ref("Name"),
	})
	alias, ok := r.define("Alias")
	require.True(t, ok)
	assert.Equal(t, ir.String{}, alias)
	assert.Equal(t, []string{"Name", "Alias"}, r.types.Names())
}

func TestFailedDefinitionDiscardsDependents(t *testing.T) {
	r := newTestResolver(openapi3.Schemas{
		"A": inline(&openapi3.Schema{OneOf: openapi3.SchemaRefs{
			ref("B"), ref("C"), ref("D"), inline(schemaOf("array")),
		}}),
		"B": inline(object(nil, map[string]*openapi3.SchemaRef{"a": ref("A")})),
		"C": inline(object(nil, map[string]*openapi3.SchemaRef{"b": ref("B")})),
		"D": inline(object(nil, map[string]*openapi3.SchemaRef{"x": inline(schemaOf("string"))})),
	})

	_, ok := r.define("A")
	assert.False(t, ok)
	assert.Equal(t, []issues.Kind{issues.KindRequiredField}, kinds(r.diag))
	assert.Equal(t, []string{"D"}, r.types.Names())
	assert.Empty(t, r.inProgress)

	for _, name := range []string{"A", "B", "C"} {
		_, ok := r.define(name)
		assert.False(t, ok, name)
	}
	assert.Equal(t, 1, r.diag.Len(), "failed names are reported once")
}
