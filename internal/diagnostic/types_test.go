package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeUnmappedReference, "kept original", "scene.Object", "Target")
	d.AddWarning(CodeConversionCycle, "back-reference omitted", "fixture.Loop", "Next/Next")
	d.AddWarning(CodePathBroken, "no field Valeu", "fixture.Sub", "Valeu", "Value")

	assert.Equal(t, 3, d.Len())
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())
	assert.Len(t, d.ByCode(CodePathBroken), 1)
	assert.Empty(t, d.ByCode(CodeNullKey))

	d.AddError(CodeDecodeFailed, "bad record", "fixture.Sub", "Value")
	assert.True(t, d.HasErrors())
	require.EqualError(t, d.Error(), "[fixture.Sub] Value: [decode_failed] bad record")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("a", "first", "", "")
	b.AddWarning("b", "second", "", "")
	b.AddError("c", "third", "", "")

	a.Merge(b)

	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "plain"},
			expected: "plain",
		},
		{
			name:     "code and path",
			diag:     Diagnostic{Code: CodeNullKey, Message: "entry dropped", FieldPath: "Dicto"},
			expected: "Dicto: [dictionary_null_key] entry dropped",
		},
		{
			name: "suggestions",
			diag: Diagnostic{
				Code: CodePathBroken, Message: "no field", TypeName: "T", FieldPath: "Valeu",
				Suggestions: []string{"Value"},
			},
			expected: "[T] Valeu: [path_broken] no field (did you mean Value?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
