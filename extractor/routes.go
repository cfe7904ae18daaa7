package extractor

import (
	"fmt"
	"strings"

	"github.com/erraggy/oastsgen/internal/httputil"
	"github.com/erraggy/oastsgen/internal/issues"
	"github.com/erraggy/oastsgen/internal/naming"
	"github.com/erraggy/oastsgen/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

// routeJob is one (path, method) pair waiting to be extracted.
type routeJob struct {
	path   string
	method ir.Method
	item   *openapi3.PathItem
	op     *openapi3.Operation
	at     location
}

// routeExtractor builds routes against the frozen registries.
type routeExtractor struct {
	types    *resolver
	security *securityResolver
	fallback *ir.Security
	diag     *issues.Collector
}

// extract builds the route for job. Parameter failures drop the whole route.
func (x *routeExtractor) extract(job routeJob) (ir.Route, bool) {
	defer x.diag.Push(fmt.Sprintf("%s %s", job.method, job.path))()
	x.diag.SetOperation(&issues.OperationContext{
		Method:      job.method.String(),
		Path:        job.path,
		OperationID: job.op.OperationID,
	})
	defer x.diag.SetOperation(nil)

	route := ir.Route{
		Method:      job.method,
		Endpoint:    job.path,
		Description: strings.TrimSpace(job.op.Description),
		OperationID: job.op.OperationID,
	}

	switch {
	case job.op.OperationID != "":
		route.Name = job.op.OperationID
	case naming.SummaryToCamelCase(job.op.Summary) != "":
		route.Name = naming.SummaryToCamelCase(job.op.Summary)
	default:
		x.diag.RequiredFieldOr("operationId", "summary")
		return ir.Route{}, false
	}

	params, ok := x.parameters(job)
	if !ok {
		return ir.Route{}, false
	}
	route.Parameters = params
	route.Requests = x.requests(job.op.RequestBody, job.at.child("requestBody"))
	route.Responses = x.responses(job.op.Responses, job.at.child("responses"))

	if job.op.Security != nil {
		route.Security = x.security.resolve(*job.op.Security, job.at.child("security"), x.diag)
	} else {
		route.Security = x.fallback
	}
	return route, true
}

// parameters merges path-level and operation-level parameters, the latter
// overriding the former by (location, name), and resolves each one.
func (x *routeExtractor) parameters(job routeJob) ([]ir.Parameter, bool) {
	type source struct {
		ref *openapi3.ParameterRef
		at  location
	}
	var merged []source
	index := make(map[string]int)
	add := func(refs openapi3.Parameters, at location) {
		for i, ref := range refs {
			src := source{ref: ref, at: at.index(i)}
			if ref != nil && ref.Value != nil {
				key := ref.Value.In + "\x00" + ref.Value.Name
				if n, ok := index[key]; ok {
					merged[n] = src
					continue
				}
				index[key] = len(merged)
			}
			merged = append(merged, src)
		}
	}
	if job.item != nil {
		add(job.item.Parameters, job.at[:len(job.at)-1].child("parameters"))
	}
	add(job.op.Parameters, job.at.child("parameters"))

	if len(merged) == 0 {
		return nil, true
	}
	defer x.diag.Push("parameters")()
	params := make([]ir.Parameter, 0, len(merged))
	for _, src := range merged {
		p, ok := x.parameter(src.ref, src.at)
		if !ok {
			return nil, false
		}
		params = append(params, p)
	}
	return params, true
}

func (x *routeExtractor) parameter(ref *openapi3.ParameterRef, at location) (ir.Parameter, bool) {
	if ref == nil {
		x.diag.RequiredField("parameters")
		return ir.Parameter{}, false
	}
	if ref.Value == nil {
		x.diag.UnsupportedReference("parameters")
		return ir.Parameter{}, false
	}
	p := ref.Value
	defer x.diag.Push(p.Name)()

	var kind ir.ParameterKind
	switch p.In {
	case openapi3.ParameterInPath:
		kind = ir.ParameterPath
	case openapi3.ParameterInQuery:
		kind = ir.ParameterQuery
	case openapi3.ParameterInHeader:
		kind = ir.ParameterHeader
	case openapi3.ParameterInCookie:
		x.diag.Unsupported("cookie parameter")
		return ir.Parameter{}, false
	default:
		x.diag.InvalidValue("in", p.In)
		return ir.Parameter{}, false
	}

	if p.Schema == nil {
		if len(p.Content) > 0 {
			x.diag.Unsupported("parameter `content`")
		} else {
			x.diag.RequiredField("schema")
		}
		return ir.Parameter{}, false
	}
	t, ok := x.types.resolve("", p.Schema, at.child("schema"))
	if !ok {
		return ir.Parameter{}, false
	}
	if !p.Required {
		t = ir.MakeOptional(t)
	}
	return ir.Parameter{
		Name:        p.Name,
		Description: strings.TrimSpace(p.Description),
		Kind:        kind,
		Type:        t,
	}, true
}

// requests returns one request per supported content type. Unknown content
// types and unresolvable bodies skip only their own entry.
func (x *routeExtractor) requests(ref *openapi3.RequestBodyRef, at location) []ir.Request {
	if ref == nil {
		return nil
	}
	if ref.Value == nil {
		x.diag.UnsupportedReference("requestBody")
		return nil
	}
	defer x.diag.Push("requestBody")()

	content := at.child("content")
	var out []ir.Request
	for _, mime := range ordered(x.types.order, ref.Value.Content, content, nil) {
		m, ok := ir.ParseMimeType(mime)
		if !ok {
			x.diag.InvalidValue("mime type", mime)
			continue
		}
		media := ref.Value.Content[mime]
		if media == nil || media.Schema == nil {
			continue
		}
		t, ok := x.types.resolve(mime, media.Schema, content.child(mime, "schema"))
		if !ok {
			continue
		}
		out = append(out, ir.Request{
			MimeType:    m,
			Description: strings.TrimSpace(ref.Value.Description),
			Type:        t,
		})
	}
	return out
}

// responses collects the default response and the literal status codes.
// Ranges such as 2XX are reported and skipped.
func (x *routeExtractor) responses(rs *openapi3.Responses, at location) ir.Responses {
	var out ir.Responses
	if rs == nil || rs.Len() == 0 {
		return out
	}
	defer x.diag.Push("responses")()

	all := rs.Map()
	for _, code := range ordered(x.types.order, all, at, statusLess) {
		if code == "default" {
			if resp, ok := x.response(code, all[code], at.child(code)); ok {
				out.Default = &resp
			}
			continue
		}
		status, kind := httputil.ParseStatusCode(code)
		switch kind {
		case httputil.StatusRange:
			pop := x.diag.Push(code)
			x.diag.Unsupported("status code range")
			pop()
			continue
		case httputil.StatusInvalid:
			x.diag.InvalidValue("responses", code)
			continue
		}
		if resp, ok := x.response(code, all[code], at.child(code)); ok {
			out.Codes = append(out.Codes, ir.StatusResponse{Code: status, Response: resp})
		}
	}
	return out
}

// response extracts one response; only its application/json body is typed.
func (x *routeExtractor) response(code string, ref *openapi3.ResponseRef, at location) (ir.Response, bool) {
	defer x.diag.Push(code)()
	if ref == nil || ref.Value == nil {
		x.diag.UnsupportedReference("responses")
		return ir.Response{}, false
	}

	var resp ir.Response
	if ref.Value.Description != nil {
		resp.Description = strings.TrimSpace(*ref.Value.Description)
	}

	media, ok := ref.Value.Content["application/json"]
	if !ok {
		if len(ref.Value.Content) > 0 {
			x.diag.Generic("only `application/json` mime-type is supported")
		}
		return resp, true
	}
	if media == nil || media.Schema == nil {
		return resp, true
	}
	t, ok := x.types.resolve("", media.Schema, at.child("content", "application/json", "schema"))
	if !ok {
		return ir.Response{}, false
	}
	resp.Body = &t
	return resp, true
}
