package issues

// Collector accumulates issues under a scope stack. It is not safe for
// concurrent use; Fork hands an independent collector to another goroutine.
type Collector struct {
	scope     Scope
	operation *OperationContext
	issues    []Issue
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Push enters a named scope. The returned func pops it.
func (c *Collector) Push(segment string) (pop func()) {
	return c.scope.Push(segment)
}

// Scope returns the current dotted scope path.
func (c *Collector) Scope() string {
	return c.scope.String()
}

// SetOperation attaches ctx to every issue recorded until it is cleared with nil.
func (c *Collector) SetOperation(ctx *OperationContext) {
	c.operation = ctx
}

// Issues returns the recorded issues in the order they were raised.
func (c *Collector) Issues() []Issue {
	return c.issues
}

// Len returns the number of recorded issues.
func (c *Collector) Len() int {
	return len(c.issues)
}

// Fork returns a collector that starts at the current scope with no issues.
func (c *Collector) Fork() *Collector {
	return &Collector{scope: c.scope.clone(), operation: c.operation}
}

// Merge appends the issues recorded by other.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.issues = append(c.issues, other.issues...)
}

// Add records issue at the current scope.
func (c *Collector) Add(issue Issue) {
	issue.Path = c.scope.String()
	if issue.OperationContext == nil && c.operation != nil {
		op := *c.operation
		issue.OperationContext = &op
	}
	c.issues = append(c.issues, issue)
}

// UnsupportedReference records a $ref found in field, which must be inline.
func (c *Collector) UnsupportedReference(field string) {
	c.Add(Issue{Kind: KindUnsupportedReference, Field: field})
}

// UnresolvedReference records a reference that could not be resolved.
func (c *Collector) UnresolvedReference(ref string) {
	c.Add(Issue{Kind: KindUnresolvedReference, Field: ref})
}

// RequiredField records a missing mandatory field.
func (c *Collector) RequiredField(field string) {
	c.Add(Issue{Kind: KindRequiredField, Field: field})
}

// RequiredFieldOr records a missing field whose fallback is missing too.
func (c *Collector) RequiredFieldOr(field, alternative string) {
	c.Add(Issue{Kind: KindRequiredFieldOr, Field: field, Alternative: alternative})
}

// InvalidValue records a field holding an unknown value.
func (c *Collector) InvalidValue(field, value string) {
	c.Add(Issue{Kind: KindInvalidValue, Field: field, Value: value})
}

// DuplicateKeys records keys that collided during a merge.
func (c *Collector) DuplicateKeys(keys []string) {
	c.Add(Issue{Kind: KindDuplicateKeys, Keys: keys})
}

// Unsupported records an untranslatable construct, described by what.
func (c *Collector) Unsupported(what string) {
	c.Add(Issue{Kind: KindUnsupported, Field: what})
}

// CyclicReference records a cycle through the named type.
func (c *Collector) CyclicReference(name string) {
	c.Add(Issue{Kind: KindCyclicReference, Field: name})
}

// Generic records a free-form message.
func (c *Collector) Generic(message string) {
	c.Add(Issue{Kind: KindGeneric, Message: message})
}
