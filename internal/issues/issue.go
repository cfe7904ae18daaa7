// Package issues provides the diagnostic type produced while resolving an
// OpenAPI document into the client intermediate representation.
package issues

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// KindUnsupportedReference marks a $ref in a field that must be inline.
	KindUnsupportedReference Kind = iota
	// KindUnresolvedReference marks a $ref whose target could not be found or registered.
	KindUnresolvedReference
	// KindRequiredField marks a missing mandatory field.
	KindRequiredField
	// KindRequiredFieldOr marks a missing field that has a fallback which is also missing.
	KindRequiredFieldOr
	// KindInvalidValue marks a field holding a value outside its accepted set.
	KindInvalidValue
	// KindDuplicateKeys marks keys that collide while merging.
	KindDuplicateKeys
	// KindUnsupported marks a construct this tool does not translate.
	KindUnsupported
	// KindCyclicReference marks a reference cycle that needs a type before it is known.
	KindCyclicReference
	// KindGeneric is a free-form diagnostic.
	KindGeneric
)

// String returns the stable tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedReference:
		return "unsupported-reference"
	case KindUnresolvedReference:
		return "unresolved-reference"
	case KindRequiredField:
		return "required-field"
	case KindRequiredFieldOr:
		return "required-field-or"
	case KindInvalidValue:
		return "invalid-value"
	case KindDuplicateKeys:
		return "duplicate-keys"
	case KindUnsupported:
		return "unsupported"
	case KindCyclicReference:
		return "cyclic-reference"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Issue represents a single problem found while extracting types and routes.
type Issue struct {
	// Path is the dotted scope where the issue was found (e.g., "get /widgets.parameters.id")
	Path string
	// Kind classifies the issue
	Kind Kind
	// Field is the field name the issue refers to, or the reference/construct for
	// reference and unsupported kinds
	Field string
	// Alternative is the fallback field for KindRequiredFieldOr
	Alternative string
	// Value is the offending value for KindInvalidValue
	Value string
	// Keys lists colliding keys for KindDuplicateKeys
	Keys []string
	// Message is the text of a KindGeneric issue
	Message string
	// OperationContext identifies the operation being extracted. Nil outside routes.
	OperationContext *OperationContext
}

// Text returns the human-readable description of the issue without its location.
func (i Issue) Text() string {
	switch i.Kind {
	case KindUnsupportedReference:
		return fmt.Sprintf("references may not appear in `%s`", i.Field)
	case KindUnresolvedReference:
		return fmt.Sprintf("could not resolve reference to `%s`", i.Field)
	case KindRequiredField:
		return fmt.Sprintf("field `%s` is required", i.Field)
	case KindRequiredFieldOr:
		return fmt.Sprintf("field `%s` is required, but may be substituted with `%s`", i.Field, i.Alternative)
	case KindInvalidValue:
		return fmt.Sprintf("field `%s` has unknown value `%s`", i.Field, i.Value)
	case KindDuplicateKeys:
		quoted := make([]string, len(i.Keys))
		for n, k := range i.Keys {
			quoted[n] = "`" + k + "`"
		}
		return "duplicate keys: " + strings.Join(quoted, ", ")
	case KindUnsupported:
		return i.Field + " is unsupported"
	case KindCyclicReference:
		return fmt.Sprintf("cyclic reference through `%s`", i.Field)
	default:
		return i.Message
	}
}

// String returns a formatted string representation of the issue.
// Format: "Error in <scope>: <text>", followed by the operation context when known.
func (i Issue) String() string {
	result := fmt.Sprintf("Error in %s: %s", i.Path, i.Text())
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		result += " " + i.OperationContext.String()
	}
	return result
}

// Error lets an Issue be used where an error is expected.
func (i Issue) Error() string {
	return i.String()
}
