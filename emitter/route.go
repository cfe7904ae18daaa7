package emitter

import (
	"fmt"
	"strings"

	"github.com/erraggy/oastsgen/internal/naming"
	"github.com/erraggy/oastsgen/ir"
)

// init emits the runtime state and the init function. Each registered
// security scheme becomes one init argument, in registry order.
func (e *emitter) init() {
	b := e.buf
	schemes := e.doc.Schemes

	headers := func() {
		b.braces(func() {
			schemes.Each(func(_ string, s ir.SecurityScheme) {
				b.str(s.HeaderKey)
				b.colon()
				b.identifier(naming.ToIdentifier(s.Name))
				b.comma()
			})
		})
	}
	args := func() {
		b.parens(func() {
			b.raw("baseUrl : string ,")
			schemes.Each(func(_ string, s ir.SecurityScheme) {
				b.identifier(naming.ToIdentifier(s.Name))
				b.raw(": string ,")
			})
		})
	}

	if e.runtime == RuntimeConfig {
		b.raw("export interface ClientConfig")
		b.braces(func() {
			b.raw("baseUrl : string ;")
			b.raw("authHeaders : Record < string , string > ;")
		})
		b.raw("export function init")
		args()
		b.colon()
		b.identifier("ClientConfig")
		b.braces(func() {
			b.identifier("return")
			b.braces(func() {
				b.raw("baseUrl : baseUrl ,")
				b.raw("authHeaders :")
				headers()
				b.comma()
			})
			b.semicolon()
		})
		return
	}

	b.raw(`let _baseUrl : string = "" ;`)
	b.raw("let _authHeaders : Record < string , string > = { } ;")
	b.raw("export function init")
	args()
	b.braces(func() {
		b.raw("_baseUrl = baseUrl ;")
		b.raw("_authHeaders =")
		headers()
		b.semicolon()
	})
}

func (e *emitter) baseURL() string {
	if e.runtime == RuntimeConfig {
		return "config . baseUrl"
	}
	return "_baseUrl"
}

func (e *emitter) authHeaders() string {
	if e.runtime == RuntimeConfig {
		return "config . authHeaders"
	}
	return "_authHeaders"
}

// route emits one exported async client function.
func (e *emitter) route(r *ir.Route) {
	b := e.buf
	body, hasBody := r.Body()

	if r.Description != "" {
		b.doc(e.description(r, body, hasBody))
	}

	b.raw("export async function")
	b.identifier(naming.ToIdentifier(r.Name))
	b.parens(func() {
		if e.runtime == RuntimeConfig {
			b.raw("config : ClientConfig ,")
		}
		if len(r.Parameters) > 0 {
			b.raw("params :")
			b.braces(func() {
				for _, p := range r.Parameters {
					b.str(p.Name)
					b.colon()
					e.typeRef(p.Type)
					b.comma()
				}
			})
			b.comma()
		}
		if hasBody {
			b.identifier("body")
			b.colon()
			switch body.MimeType {
			case ir.MimeMultipartFormData:
				b.identifier("FormData")
			case ir.MimeTextPlain:
				b.identifier("string")
			default:
				e.typeRef(body.Type)
			}
			b.comma()
		}
	})
	b.colon()
	b.identifier("Promise")
	b.generics(func() { b.identifier("Response") })
	b.braces(func() {
		e.url(r, body, hasBody)
		b.raw("return await fetch")
		b.parens(func() {
			b.raw("url . toString ( )")
			b.comma()
			b.braces(func() {
				b.identifier("method")
				b.colon()
				b.str(r.Method.String())
				b.comma()

				b.identifier("headers")
				b.colon()
				b.braces(func() {
					b.tripleDot()
					b.raw(e.authHeaders())
					b.comma()
					if hasBody {
						switch body.MimeType {
						case ir.MimeJSON:
							b.raw("'Content-Type' : 'application/json' ,")
						case ir.MimeTextPlain:
							b.raw("'Content-Type' : 'text/plain' ,")
						}
					}
					for _, p := range r.ParametersOf(ir.ParameterHeader) {
						b.str(p.Name)
						b.colon()
						b.identifier("params")
						b.brackets(func() { b.str(p.Name) })
						b.comma()
					}
				})
				b.comma()

				if hasBody && body.MimeType != ir.MimeFormURLEncoded {
					b.identifier("body")
					b.colon()
					if body.MimeType == ir.MimeJSON {
						b.raw("JSON . stringify ( body )")
					} else {
						b.identifier("body")
					}
					b.comma()
				}
			})
		})
	})
}

// description returns the doc text of r. Multipart bodies list their
// fields after the description.
func (e *emitter) description(r *ir.Route, body ir.Request, hasBody bool) string {
	if !hasBody || body.MimeType != ir.MimeMultipartFormData {
		return r.Description
	}

	var sb strings.Builder
	sb.WriteString(r.Description)
	sb.WriteString("\n\nForm data:\n")
	if obj, ok := e.object(body.Type); ok {
		for _, f := range obj.Fields {
			fmt.Fprintf(&sb, "- %s (%s)\n", f.Name, EmitType(f.Type))
		}
	}
	return sb.String()
}

// object returns the object behind ref, following one registry name.
func (e *emitter) object(ref ir.TypeRef) (ir.Object, bool) {
	t := ref.Inline
	if ref.IsNamed() {
		t, _ = e.doc.Types.Get(ref.Name)
	}
	obj, ok := t.(ir.Object)
	return obj, ok
}

// url emits the statements that build `url`: path placeholders are replaced
// literally, query parameters and URL-encoded bodies become the search string.
func (e *emitter) url(r *ir.Route, body ir.Request, hasBody bool) {
	b := e.buf
	b.raw("const url = new URL")
	b.parens(func() { b.raw(e.baseURL()) })
	b.semicolon()

	b.raw("url . pathname =")
	b.str(r.Endpoint)
	for _, p := range r.ParametersOf(ir.ParameterPath) {
		b.raw(". replace")
		b.parens(func() {
			b.str("{" + p.Name + "}")
			b.comma()
			b.identifier("params")
			b.brackets(func() { b.str(p.Name) })
		})
	}
	b.semicolon()

	query := r.ParametersOf(ir.ParameterQuery)
	formBody := hasBody && body.MimeType == ir.MimeFormURLEncoded
	if len(query) == 0 && !formBody {
		return
	}

	b.raw("url . search = new URLSearchParams")
	b.parens(func() {
		b.braces(func() {
			for _, p := range query {
				b.tripleDot()
				b.parens(func() {
					b.identifier("params")
					b.brackets(func() { b.str(p.Name) })
					b.andAnd()
					b.parens(func() { b.raw(e.queryEntry(p)) })
				})
				b.comma()
			}
			if formBody {
				b.tripleDot()
				b.identifier("body")
				b.comma()
			}
		})
	})
	b.dot()
	b.identifier("toString")
	b.parens(nil)
	b.semicolon()
}

// isArray reports whether ref, optional or not, is an array, following one
// registry name.
func (e *emitter) isArray(ref ir.TypeRef) bool {
	ref = ref.Unwrap()
	t := ref.Inline
	if ref.IsNamed() {
		t, _ = e.doc.Types.Get(ref.Name)
	}
	if opt, ok := t.(ir.Optional); ok {
		t = opt.Inner.Inline
	}
	_, ok := t.(ir.Array)
	return ok
}

// queryEntry renders the object spread for one query parameter. Arrays are
// flattened to indexed keys; anything else is stringified as one pair.
func (e *emitter) queryEntry(p ir.Parameter) string {
	name := quoteEscaper.Replace(p.Name)
	if e.isArray(p.Type) {
		return fmt.Sprintf("Object . fromEntries ( params [ '%[1]s' ] . map ( ( v , i ) => [ `%[2]s[${i}]` , v . toString ( ) ] ) )",
			name, templateEscaper.Replace(p.Name))
	}
	return fmt.Sprintf("{ '%[1]s' : params [ '%[1]s' ] . toString ( ) }", name)
}

var templateEscaper = strings.NewReplacer("`", "\\`", `\`, `\\`, "${", `\${`)
