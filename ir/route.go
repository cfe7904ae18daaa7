package ir

import "strings"

// Method is an HTTP method.
type Method int

// Methods in path item field order.
const (
	MethodGet Method = iota
	MethodPut
	MethodPost
	MethodDelete
	MethodOptions
	MethodHead
	MethodPatch
	MethodTrace
	MethodConnect
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "get"
	case MethodPut:
		return "put"
	case MethodPost:
		return "post"
	case MethodDelete:
		return "delete"
	case MethodOptions:
		return "options"
	case MethodHead:
		return "head"
	case MethodPatch:
		return "patch"
	case MethodTrace:
		return "trace"
	case MethodConnect:
		return "connect"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(s string) (Method, bool) {
	for m := MethodGet; m <= MethodConnect; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, true
		}
	}
	return 0, false
}

// MimeType is a request content type the client can send.
type MimeType int

// Supported request content types.
const (
	MimeJSON MimeType = iota
	MimeMultipartFormData
	MimeFormURLEncoded
	MimeTextPlain
)

// String returns the media type string.
func (m MimeType) String() string {
	switch m {
	case MimeJSON:
		return "application/json"
	case MimeMultipartFormData:
		return "multipart/form-data"
	case MimeFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case MimeTextPlain:
		return "text/plain"
	default:
		return "unknown"
	}
}

// ParseMimeType parses an exact media type string.
func ParseMimeType(s string) (MimeType, bool) {
	for m := MimeJSON; m <= MimeTextPlain; m++ {
		if s == m.String() {
			return m, true
		}
	}
	return 0, false
}

// ParameterKind is where a parameter travels on the wire.
type ParameterKind int

const (
	ParameterPath ParameterKind = iota
	ParameterQuery
	ParameterHeader
)

func (k ParameterKind) String() string {
	switch k {
	case ParameterPath:
		return "path"
	case ParameterQuery:
		return "query"
	case ParameterHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Parameter is one operation parameter. Optional parameters carry an
// Optional type.
type Parameter struct {
	Name        string
	Description string
	Kind        ParameterKind
	Type        TypeRef
}

// Request is the body accepted for one content type.
type Request struct {
	MimeType    MimeType
	Description string
	Type        TypeRef
}

// Response is one declared response. Body is nil when no JSON body is typed.
type Response struct {
	Description string
	Body        *TypeRef
}

// StatusResponse pairs a literal status code with its response.
type StatusResponse struct {
	Code     int
	Response Response
}

// Responses holds the default response and the per-status responses.
type Responses struct {
	Default *Response
	Codes   []StatusResponse
}

// Len returns the number of responses including the default.
func (r Responses) Len() int {
	n := len(r.Codes)
	if r.Default != nil {
		n++
	}
	return n
}

// Security references the scheme that authenticates a route.
type Security struct {
	Scheme string
}

// SecurityScheme is a header API key the client sends on every call.
type SecurityScheme struct {
	// Name is the declared scheme name and the init parameter it becomes
	Name string
	// HeaderKey is the wire header populated with the key
	HeaderKey string
}

// Route is one extracted operation.
type Route struct {
	Name        string
	Method      Method
	Endpoint    string
	Description string
	OperationID string
	Parameters  []Parameter
	Requests    []Request
	Responses   Responses
	Security    *Security
}

// requestPreference is the order in which a body is chosen for emission.
var requestPreference = []MimeType{MimeJSON, MimeMultipartFormData, MimeFormURLEncoded, MimeTextPlain}

// Body returns the request used for the emitted body argument.
func (r *Route) Body() (Request, bool) {
	for _, m := range requestPreference {
		for _, req := range r.Requests {
			if req.MimeType == m {
				return req, true
			}
		}
	}
	return Request{}, false
}

// Parameter returns the parameter called name.
func (r *Route) Parameter(name string) (Parameter, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParametersOf returns the parameters of kind k in declaration order.
func (r *Route) ParametersOf(k ParameterKind) []Parameter {
	var out []Parameter
	for _, p := range r.Parameters {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// Document is the complete intermediate representation.
type Document struct {
	Routes   []Route
	Types    *Types
	Schemes  *SecuritySchemes
	Security *Security
}

// NewDocument returns a document with empty registries.
func NewDocument() *Document {
	return &Document{
		Types:   NewRegistry[Type](),
		Schemes: NewRegistry[SecurityScheme](),
	}
}

// Route returns the route called name.
func (d *Document) Route(name string) (*Route, bool) {
	for i := range d.Routes {
		if d.Routes[i].Name == name {
			return &d.Routes[i], true
		}
	}
	return nil, false
}
