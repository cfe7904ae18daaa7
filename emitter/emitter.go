package emitter

import (
	"fmt"
	"strings"

	"github.com/erraggy/oastsgen/internal/naming"
	"github.com/erraggy/oastsgen/ir"
)

// Runtime selects how the base URL and auth headers reach each route.
type Runtime int

const (
	// RuntimeGlobal stores configuration in module-level bindings set by init.
	RuntimeGlobal Runtime = iota
	// RuntimeConfig passes a ClientConfig returned by init to every route.
	RuntimeConfig
)

func (r Runtime) String() string {
	switch r {
	case RuntimeGlobal:
		return "global"
	case RuntimeConfig:
		return "config"
	default:
		return fmt.Sprintf("Runtime(%d)", int(r))
	}
}

// ParseRuntime parses "global" or "config". The empty string selects
// RuntimeGlobal.
func ParseRuntime(s string) (Runtime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "global":
		return RuntimeGlobal, nil
	case "config":
		return RuntimeConfig, nil
	default:
		return 0, fmt.Errorf("emitter: unknown runtime %q (want global or config)", s)
	}
}

type config struct {
	runtime Runtime
}

// Option configures Emit.
type Option func(*config)

// WithRuntime selects the runtime style. The default is RuntimeGlobal.
func WithRuntime(r Runtime) Option {
	return func(c *config) {
		c.runtime = r
	}
}

// Emit renders doc as TypeScript source.
func Emit(doc *ir.Document, opts ...Option) string {
	if doc == nil {
		return ""
	}
	cfg := config{runtime: RuntimeGlobal}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &emitter{buf: newBuffer(), doc: doc, runtime: cfg.runtime}
	e.types()
	e.init()
	for i := range doc.Routes {
		e.route(&doc.Routes[i])
	}
	return e.String(len(doc.Routes))
}

// EmitType renders a single type expression.
func EmitType(ref ir.TypeRef) string {
	e := &emitter{buf: newBuffer()}
	e.typeRef(ref)
	return e.String(0)
}

type emitter struct {
	buf     *buffer
	doc     *ir.Document
	runtime Runtime
}

func (e *emitter) String(routeCount int) string {
	out := getOutputBuffer(routeCount)
	defer putOutputBuffer(out)
	e.buf.writeTo(out)
	return out.String()
}

// types emits `export type Name = expr ;` for every registered type.
func (e *emitter) types() {
	e.doc.Types.Each(func(name string, t ir.Type) {
		e.buf.identifier("export")
		e.buf.identifier("type")
		e.buf.identifier(naming.ToTypeName(name))
		e.buf.equals()
		e.typeNode(t)
		e.buf.semicolon()
	})
}

func (e *emitter) typeRef(ref ir.TypeRef) {
	if ref.IsNamed() {
		e.buf.identifier(naming.ToTypeName(ref.Name))
		return
	}
	if ref.Inline == nil {
		e.buf.identifier("any")
		return
	}
	e.typeNode(ref.Inline)
}

func (e *emitter) typeNode(t ir.Type) {
	b := e.buf
	switch t := t.(type) {
	case ir.Any:
		b.identifier("any")
	case ir.Number:
		b.identifier("number")
	case ir.String:
		b.identifier("string")
	case ir.Boolean:
		b.identifier("boolean")
	case ir.Enum:
		// ( 'a' | 'b' )
		b.parens(func() {
			for i, v := range t.Variants {
				if i > 0 {
					b.or()
				}
				b.str(v)
			}
		})
	case ir.Array:
		// ( T ) [ ]
		b.parens(func() { e.typeRef(t.Elem) })
		b.brackets(nil)
	case ir.Object:
		// ( { 'a' : T , 'b' ? : ( U | undefined ) , } )
		b.parens(func() {
			b.braces(func() {
				for _, f := range t.Fields {
					b.str(f.Name)
					if f.Type.IsOptional() {
						b.question()
					}
					b.colon()
					e.typeRef(f.Type)
					b.comma()
				}
			})
		})
	case ir.Union:
		if len(t.Members) == 0 {
			b.identifier("never")
			return
		}
		b.parens(func() {
			for i, m := range t.Members {
				if i > 0 {
					b.or()
				}
				e.typeRef(m)
			}
		})
	case ir.Optional:
		b.parens(func() {
			e.typeRef(t.Inner)
			b.or()
			b.identifier("undefined")
		})
	default:
		panic(fmt.Sprintf("emitter: unhandled type node %T", t))
	}
}
