package shaderplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiagnostics(t *testing.T) {
	var tests = []struct {
		log  string
		want Diagnostic
	}{
		{
			log:  "0:12(5): error: syntax error, unexpected IDENTIFIER, expecting ',' or ';'",
			want: Diagnostic{Line: 12, Column: 5, Severity: SeverityError, Message: "syntax error, unexpected IDENTIFIER, expecting ',' or ';'"},
		},
		{
			log:  "0:3(10): warning: `x' used uninitialized",
			want: Diagnostic{Line: 3, Column: 10, Severity: SeverityWarning, Message: "`x' used uninitialized"},
		},
		{
			log:  `0(7) : error C1008: undefined variable "col"`,
			want: Diagnostic{Line: 7, Severity: SeverityError, Message: `undefined variable "col"`},
		},
		{
			log:  "ERROR: 0:4: 'foo' : undeclared identifier",
			want: Diagnostic{Line: 4, Severity: SeverityError, Message: "'foo' : undeclared identifier"},
		},
		{
			log:  "WARNING: 1:9: extension not supported",
			want: Diagnostic{Source: 1, Line: 9, Severity: SeverityWarning, Message: "extension not supported"},
		},
		{
			log:  "Internal compiler error.",
			want: Diagnostic{Message: "Internal compiler error."},
		},
	}
	for _, test := range tests {
		got := ParseDiagnostics(test.log)
		require.Len(t, got, 1, test.log)
		assert.Equal(t, test.want, got[0], test.log)
	}
}

func TestParseDiagnosticsMultiline(t *testing.T) {
	log := "0:2(1): error: first\r\n\n0:5(3): error: second\n\x00"
	got := ParseDiagnostics(log)
	require.Len(t, got, 2)
	assert.Equal(t, "2:1: error: first", got[0].String())
	assert.Equal(t, "5:3: error: second", got[1].String())
	assert.Empty(t, ParseDiagnostics(""))
}
