package extractor

import (
	"github.com/erraggy/oastsgen/internal/issues"
	"github.com/erraggy/oastsgen/internal/sourceorder"
	"github.com/erraggy/oastsgen/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

// securityResolver registers supported schemes and picks the scheme a
// requirement list resolves to.
type securityResolver struct {
	schemes  *ir.SecuritySchemes
	declared map[string]bool
	order    *sourceorder.Index
	logger   Logger
}

// registerAll registers every declared scheme in source order.
func (s *securityResolver) registerAll(declared openapi3.SecuritySchemes, diag *issues.Collector) {
	at := location{"components", "securitySchemes"}
	for _, name := range ordered(s.order, declared, at, nil) {
		s.declared[name] = true
		ref := declared[name]
		pop := diag.Push(name)
		switch {
		case ref == nil:
			diag.RequiredField("type")
		case ref.Value == nil:
			diag.UnsupportedReference("securitySchemes")
		default:
			s.register(name, ref.Value, diag)
		}
		pop()
	}
}

// register adds name when scheme is a header API key. Every other kind of
// scheme is reported as unsupported.
func (s *securityResolver) register(name string, scheme *openapi3.SecurityScheme, diag *issues.Collector) {
	switch scheme.Type {
	case "apiKey":
		switch scheme.In {
		case openapi3.ParameterInHeader:
			if scheme.Name == "" {
				diag.RequiredField("name")
				return
			}
			s.schemes.Insert(name, ir.SecurityScheme{Name: name, HeaderKey: scheme.Name})
			s.logger.Debug("registered security scheme", KeyScheme, name, KeyHeader, scheme.Name)
		case openapi3.ParameterInQuery:
			diag.Unsupported("Query API key authentication")
		case openapi3.ParameterInCookie:
			diag.Unsupported("Cookie API key authentication")
		default:
			diag.InvalidValue("in", scheme.In)
		}
	case "http":
		diag.Unsupported("HTTP authentication")
	case "oauth2":
		diag.Unsupported("OAuth2 authentication")
	case "openIdConnect":
		diag.Unsupported("OpenID authentication")
	case "mutualTLS":
		diag.Unsupported("Mutual TLS authentication")
	case "":
		diag.RequiredField("type")
	default:
		diag.InvalidValue("type", scheme.Type)
	}
}

// resolve scans the alternatives in order and returns the first scheme name
// that is registered. Names declared nowhere are reported; declared but
// unsupported schemes were reported at registration and are skipped.
func (s *securityResolver) resolve(reqs openapi3.SecurityRequirements, at location, diag *issues.Collector) *ir.Security {
	if len(reqs) == 0 {
		return nil
	}
	defer diag.Push("security")()
	for i, alt := range reqs {
		for _, name := range ordered(s.order, alt, at.index(i), nil) {
			if s.schemes.Has(name) {
				return &ir.Security{Scheme: name}
			}
			if !s.declared[name] {
				diag.UnresolvedReference(name)
			}
		}
	}
	return nil
}
