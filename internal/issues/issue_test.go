package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueText(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "unsupported reference",
			issue: Issue{Kind: KindUnsupportedReference, Field: "securitySchemes"},
			want:  "references may not appear in `securitySchemes`",
		},
		{
			name:  "unresolved reference",
			issue: Issue{Kind: KindUnresolvedReference, Field: "#/components/schemas/Pet"},
			want:  "could not resolve reference to `#/components/schemas/Pet`",
		},
		{
			name:  "required field",
			issue: Issue{Kind: KindRequiredField, Field: "items"},
			want:  "field `items` is required",
		},
		{
			name:  "required field with fallback",
			issue: Issue{Kind: KindRequiredFieldOr, Field: "operationId", Alternative: "summary"},
			want:  "field `operationId` is required, but may be substituted with `summary`",
		},
		{
			name:  "invalid value",
			issue: Issue{Kind: KindInvalidValue, Field: "content", Value: "application/xml"},
			want:  "field `content` has unknown value `application/xml`",
		},
		{
			name:  "duplicate keys",
			issue: Issue{Kind: KindDuplicateKeys, Keys: []string{"id", "name"}},
			want:  "duplicate keys: `id`, `name`",
		},
		{
			name:  "unsupported",
			issue: Issue{Kind: KindUnsupported, Field: "`anyOf`"},
			want:  "`anyOf` is unsupported",
		},
		{
			name:  "cyclic reference",
			issue: Issue{Kind: KindCyclicReference, Field: "Node"},
			want:  "cyclic reference through `Node`",
		},
		{
			name:  "generic",
			issue: Issue{Kind: KindGeneric, Message: "only `application/json` responses are typed"},
			want:  "only `application/json` responses are typed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.Text())
		})
	}
}

func TestIssueString(t *testing.T) {
	issue := Issue{Path: "get /widgets.parameters.id", Kind: KindRequiredField, Field: "schema"}
	assert.Equal(t, "Error in get /widgets.parameters.id: field `schema` is required", issue.String())
	assert.Equal(t, issue.String(), issue.Error())

	issue.OperationContext = &OperationContext{Method: "get", Path: "/widgets", OperationID: "listWidgets"}
	assert.Equal(t, "Error in get /widgets.parameters.id: field `schema` is required (operationId: listWidgets)", issue.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unsupported-reference", KindUnsupportedReference.String())
	assert.Equal(t, "cyclic-reference", KindCyclicReference.String())
	assert.Equal(t, "generic", KindGeneric.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestOperationContextString(t *testing.T) {
	assert.Equal(t, "", OperationContext{}.String())
	assert.True(t, OperationContext{}.IsEmpty())
	assert.Equal(t, "(post /pets)", OperationContext{Method: "post", Path: "/pets"}.String())
	assert.Equal(t, "(operationId: addPet)", OperationContext{Method: "post", Path: "/pets", OperationID: "addPet"}.String())
}
