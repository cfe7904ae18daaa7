package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastsgen/ir"
)

func testObject() ir.Object {
	return ir.Object{Fields: []ir.Field{
		{Name: "a", Type: ir.Inline(ir.Any{})},
		{Name: "b", Type: ir.Inline(ir.String{})},
		{Name: "c", Type: ir.Inline(ir.Number{})},
		{Name: "d", Type: ir.Named("Test")},
	}}
}

func TestEmitType(t *testing.T) {
	tests := []struct {
		name string
		ref  ir.TypeRef
		want string
	}{
		{"any", ir.Inline(ir.Any{}), "any"},
		{"number", ir.Inline(ir.Number{}), "number"},
		{"string", ir.Inline(ir.String{}), "string"},
		{"boolean", ir.Inline(ir.Boolean{}), "boolean"},
		{"enum", ir.Inline(ir.Enum{Variants: []string{"a", "b", "c"}}), "( 'a' | 'b' | 'c' )"},
		{"array", ir.Inline(ir.Array{Elem: ir.Inline(ir.Any{})}), "( any ) [ ]"},
		{
			"nested array",
			ir.Inline(ir.Array{Elem: ir.Inline(ir.Array{Elem: ir.Inline(ir.Any{})})}),
			"( ( any ) [ ] ) [ ]",
		},
		{
			"object",
			ir.Inline(testObject()),
			"( { 'a' : any , 'b' : string , 'c' : number , 'd' : Test , } )",
		},
		{
			"array of object",
			ir.Inline(ir.Array{Elem: ir.Inline(testObject())}),
			"( ( { 'a' : any , 'b' : string , 'c' : number , 'd' : Test , } ) ) [ ]",
		},
		{
			"union",
			ir.Inline(ir.Union{Members: []ir.TypeRef{
				ir.Inline(ir.Number{}), ir.Inline(ir.String{}), ir.Inline(ir.Boolean{}), ir.Named("Test"),
			}}),
			"( number | string | boolean | Test )",
		},
		{"empty union", ir.Inline(ir.Union{}), "never"},
		{"optional", ir.MakeOptional(ir.Inline(ir.String{})), "( string | undefined )"},
		{"optional ref", ir.MakeOptional(ir.Named("Test")), "( Test | undefined )"},
		{
			"optional field",
			ir.Inline(ir.Object{Fields: []ir.Field{
				{Name: "tag", Type: ir.MakeOptional(ir.Inline(ir.String{}))},
			}}),
			"( { 'tag' ? : ( string | undefined ) , } )",
		},
		{"named", ir.Named("Pet"), "Pet"},
		{"sanitized name", ir.Named("pet-summary"), "PetSummary"},
		{"zero ref", ir.TypeRef{}, "any"},
		{"quoted field", ir.Inline(ir.Object{Fields: []ir.Field{{Name: "it's", Type: ir.Inline(ir.Any{})}}}), `( { 'it\'s' : any , } )`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmitType(tt.ref))
		})
	}
}

func TestEmit_TypeDeclaration(t *testing.T) {
	doc := ir.NewDocument()
	doc.Types.Insert("Test", ir.Any{})

	out := Emit(doc)
	assert.True(t, strings.HasPrefix(out, "export type Test = any ;"), out)
}

func TestEmit_TypeDeclarationOrder(t *testing.T) {
	doc := ir.NewDocument()
	doc.Types.Insert("Zebra", ir.String{})
	doc.Types.Insert("Apple", ir.Array{Elem: ir.Named("Zebra")})

	out := Emit(doc)
	zebra := strings.Index(out, "export type Zebra")
	apple := strings.Index(out, "export type Apple = ( Zebra ) [ ] ;")
	require.GreaterOrEqual(t, zebra, 0)
	require.GreaterOrEqual(t, apple, 0)
	assert.Less(t, zebra, apple)
}

func testSchemes() *ir.Document {
	doc := ir.NewDocument()
	doc.Schemes.Insert("name0", ir.SecurityScheme{Name: "name0", HeaderKey: "header-key-0"})
	doc.Schemes.Insert("name1", ir.SecurityScheme{Name: "name1", HeaderKey: "header-key-1"})
	return doc
}

func TestEmit_InitGlobal(t *testing.T) {
	want := strings.Join([]string{
		`let _baseUrl : string = "" ;`,
		"let _authHeaders : Record < string , string > = { } ;",
		"export function init ( baseUrl : string , name0 : string , name1 : string , ) {",
		"_baseUrl = baseUrl ;",
		"_authHeaders = {",
		"'header-key-0' : name0 ,",
		"'header-key-1' : name1 ,",
		"} ;",
		"}",
	}, " ")
	assert.Equal(t, want, Emit(testSchemes()))
}

func TestEmit_InitWithoutSchemes(t *testing.T) {
	want := `let _baseUrl : string = "" ; let _authHeaders : Record < string , string > = { } ; ` +
		"export function init ( baseUrl : string , ) { _baseUrl = baseUrl ; _authHeaders = { } ; }"
	assert.Equal(t, want, Emit(ir.NewDocument()))
}

func TestEmit_InitConfig(t *testing.T) {
	want := strings.Join([]string{
		"export interface ClientConfig { baseUrl : string ; authHeaders : Record < string , string > ; }",
		"export function init ( baseUrl : string , name0 : string , name1 : string , ) : ClientConfig {",
		"return {",
		"baseUrl : baseUrl ,",
		"authHeaders : {",
		"'header-key-0' : name0 ,",
		"'header-key-1' : name1 ,",
		"} ,",
		"} ;",
		"}",
	}, " ")
	assert.Equal(t, want, Emit(testSchemes(), WithRuntime(RuntimeConfig)))
}

func TestEmit_InitSanitizesSchemeNames(t *testing.T) {
	doc := ir.NewDocument()
	doc.Schemes.Insert("api-key", ir.SecurityScheme{Name: "api-key", HeaderKey: "X-API-Key"})

	out := Emit(doc)
	assert.Contains(t, out, "init ( baseUrl : string , apiKey : string , )")
	assert.Contains(t, out, "'X-API-Key' : apiKey ,")
}

func TestEmit_Order(t *testing.T) {
	doc := testSchemes()
	doc.Types.Insert("Pet", ir.Any{})
	doc.Routes = []ir.Route{{Name: "listPets", Method: ir.MethodGet, Endpoint: "/pets"}}

	out := Emit(doc)
	typeAt := strings.Index(out, "export type Pet")
	initAt := strings.Index(out, "export function init")
	routeAt := strings.Index(out, "export async function listPets")
	require.True(t, typeAt >= 0 && initAt >= 0 && routeAt >= 0, out)
	assert.Less(t, typeAt, initAt)
	assert.Less(t, initAt, routeAt)
}

func TestEmit_Deterministic(t *testing.T) {
	doc := testSchemes()
	doc.Types.Insert("Pet", testObject())
	doc.Routes = []ir.Route{{Name: "listPets", Method: ir.MethodGet, Endpoint: "/pets", Description: "List"}}

	assert.Equal(t, Emit(doc), Emit(doc))
}

func TestEmit_NilDocument(t *testing.T) {
	assert.Empty(t, Emit(nil))
}

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		in      string
		want    Runtime
		wantErr bool
	}{
		{"", RuntimeGlobal, false},
		{"global", RuntimeGlobal, false},
		{"Config", RuntimeConfig, false},
		{" config ", RuntimeConfig, false},
		{"module", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRuntime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuntime_String(t *testing.T) {
	assert.Equal(t, "global", RuntimeGlobal.String())
	assert.Equal(t, "config", RuntimeConfig.String())
	assert.Equal(t, "Runtime(7)", Runtime(7).String())
}
