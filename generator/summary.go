package generator

import (
	"strconv"

	"github.com/erraggy/oastsgen/emitter"
	"github.com/erraggy/oastsgen/ir"
)

// Summary is a serializable view of an extracted document, used by the
// inspect command and the MCP inspect tool.
type Summary struct {
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Success  bool            `json:"success" yaml:"success"`
	Types    []TypeSummary   `json:"types" yaml:"types"`
	Schemes  []SchemeSummary `json:"schemes" yaml:"schemes"`
	Security string          `json:"security,omitempty" yaml:"security,omitempty"`
	Routes   []RouteSummary  `json:"routes" yaml:"routes"`
	Issues   []string        `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// TypeSummary is one registered type and its rendered expression.
type TypeSummary struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// SchemeSummary is one security scheme.
type SchemeSummary struct {
	Name   string `json:"name" yaml:"name"`
	Header string `json:"header" yaml:"header"`
}

// RouteSummary describes one route.
type RouteSummary struct {
	Name        string             `json:"name" yaml:"name"`
	Method      string             `json:"method" yaml:"method"`
	Endpoint    string             `json:"endpoint" yaml:"endpoint"`
	OperationID string             `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []ParameterSummary `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Body        *BodySummary       `json:"body,omitempty" yaml:"body,omitempty"`
	Responses   []string           `json:"responses,omitempty" yaml:"responses,omitempty"`
	Security    string             `json:"security,omitempty" yaml:"security,omitempty"`
}

// ParameterSummary is one route parameter.
type ParameterSummary struct {
	Name string `json:"name" yaml:"name"`
	In   string `json:"in" yaml:"in"`
	Type string `json:"type" yaml:"type"`
}

// BodySummary is the request body chosen for the emitted function.
type BodySummary struct {
	MimeType string `json:"mimeType" yaml:"mimeType"`
	Type     string `json:"type" yaml:"type"`
}

// Summary builds the serializable view of the result.
func (r *GenerateResult) Summary() Summary {
	s := Summarize(r.Document)
	s.Source = r.SourceName
	s.Success = r.Success
	s.Issues = r.IssueStrings()
	return s
}

// Summarize builds the serializable view of doc. Type expressions are
// rendered the way the emitter renders them.
func Summarize(doc *ir.Document) Summary {
	s := Summary{
		Success: true,
		Types:   []TypeSummary{},
		Schemes: []SchemeSummary{},
		Routes:  []RouteSummary{},
	}
	if doc == nil {
		return s
	}

	doc.Types.Each(func(name string, t ir.Type) {
		s.Types = append(s.Types, TypeSummary{Name: name, Type: emitter.EmitType(ir.Inline(t))})
	})
	doc.Schemes.Each(func(name string, scheme ir.SecurityScheme) {
		s.Schemes = append(s.Schemes, SchemeSummary{Name: name, Header: scheme.HeaderKey})
	})
	if doc.Security != nil {
		s.Security = doc.Security.Scheme
	}

	for i := range doc.Routes {
		s.Routes = append(s.Routes, summarizeRoute(&doc.Routes[i]))
	}
	return s
}

func summarizeRoute(r *ir.Route) RouteSummary {
	rs := RouteSummary{
		Name:        r.Name,
		Method:      r.Method.String(),
		Endpoint:    r.Endpoint,
		OperationID: r.OperationID,
	}
	for _, p := range r.Parameters {
		rs.Parameters = append(rs.Parameters, ParameterSummary{
			Name: p.Name,
			In:   p.Kind.String(),
			Type: emitter.EmitType(p.Type),
		})
	}
	if body, ok := r.Body(); ok {
		rs.Body = &BodySummary{MimeType: body.MimeType.String(), Type: emitter.EmitType(body.Type)}
	}
	if r.Responses.Default != nil {
		rs.Responses = append(rs.Responses, "default")
	}
	for _, c := range r.Responses.Codes {
		rs.Responses = append(rs.Responses, strconv.Itoa(c.Code))
	}
	if r.Security != nil {
		rs.Security = r.Security.Scheme
	}
	return rs
}
