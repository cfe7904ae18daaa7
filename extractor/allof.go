package extractor

import (
	"github.com/erraggy/oastsgen/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

// mergeOutcome tells how an allOf merge ended.
type mergeOutcome int

const (
	// mergeMerged means every fragment was an object (or carried nothing).
	mergeMerged mergeOutcome = iota
	// mergeIncompatibleFragment means a fragment resolved to a non-object type.
	mergeIncompatibleFragment
	// mergeDuplicateKeys means two fragments declared the same field.
	mergeDuplicateKeys
	// mergeFragmentFailed means a fragment could not be resolved at all.
	mergeFragmentFailed
)

// mergeResult is the tagged result of mergeFragments.
type mergeResult struct {
	outcome    mergeOutcome
	fields     []ir.Field
	duplicates []string
}

// mergeFragments merges the fields of every fragment left to right. Any
// fragments contribute no fields. The first field of a duplicated name is kept
// and every duplicate is reported.
func (r *resolver) mergeFragments(refs openapi3.SchemaRefs, at location) mergeResult {
	var res mergeResult
	seen := make(map[string]bool)
	for i, ref := range refs {
		t, ok := r.fragment(ref, at.index(i))
		if !ok {
			return mergeResult{outcome: mergeFragmentFailed}
		}
		switch frag := t.(type) {
		case ir.Any:
			continue
		case ir.Object:
			for _, f := range frag.Fields {
				if seen[f.Name] {
					res.duplicates = append(res.duplicates, f.Name)
					continue
				}
				seen[f.Name] = true
				res.fields = append(res.fields, f)
			}
		default:
			return mergeResult{outcome: mergeIncompatibleFragment}
		}
	}
	if len(res.duplicates) > 0 {
		res.outcome = mergeDuplicateKeys
	}
	return res
}

// fragment resolves one allOf member to its type node.
func (r *resolver) fragment(ref *openapi3.SchemaRef, at location) (ir.Type, bool) {
	if ref == nil {
		r.diag.RequiredField("schema")
		return nil, false
	}
	if ref.Ref != "" {
		return r.deref(ref.Ref)
	}
	if ref.Value == nil {
		r.diag.RequiredField("schema")
		return nil, false
	}
	return r.schema(ref.Value, at)
}

func (r *resolver) allOf(refs openapi3.SchemaRefs, at location) (ir.Type, bool) {
	res := r.mergeFragments(refs, at)
	switch res.outcome {
	case mergeMerged:
		if len(res.fields) == 0 {
			return ir.Any{}, true
		}
		return ir.Object{Fields: res.fields}, true
	case mergeIncompatibleFragment:
		r.diag.Unsupported("`allOf` fragment that is not an object")
		return nil, false
	case mergeDuplicateKeys:
		r.diag.DuplicateKeys(res.duplicates)
		return nil, false
	case mergeFragmentFailed:
		return nil, false
	default:
		panic("extractor: unknown merge outcome")
	}
}
