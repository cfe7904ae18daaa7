package issues

import "fmt"

// OperationContext identifies the operation an issue was raised for.
type OperationContext struct {
	// Method is the lower-case HTTP method
	Method string
	// Path is the endpoint template (e.g., "/users/{id}")
	Path string
	// OperationID is the operationId if defined (may be empty)
	OperationID string
}

// String returns "(operationId: x)" when the operation has an id, else "(method path)".
func (c OperationContext) String() string {
	if c.IsEmpty() {
		return ""
	}
	if c.OperationID != "" {
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	}
	return fmt.Sprintf("(%s %s)", c.Method, c.Path)
}

// IsEmpty returns true if the context has no meaningful information.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
