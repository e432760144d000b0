package shaderplay

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Severity of a driver diagnostic.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single message of a shader info log.
type Diagnostic struct {
	// Source is the source string index reported by the driver, usually 0.
	Source int
	// Line is the 1 based line number or 0 if the driver did not report one.
	Line     int
	Column   int
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	switch {
	case d.Line == 0:
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	case d.Column == 0:
		return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}

var (
	// Mesa: 0:12(5): error: syntax error, unexpected IDENTIFIER
	mesaDiag = regexp.MustCompile(`^(\d+):(\d+)\((\d+)\):\s*(error|warning)\s*:\s*(.*)$`)
	// NVIDIA: 0(12) : error C1008: undefined variable "x"
	nvidiaDiag = regexp.MustCompile(`^(\d+)\((\d+)\)\s*:\s*(error|warning)\s*(?:[A-Z]\d+)?\s*:\s*(.*)$`)
	// AMD, Intel, Apple: ERROR: 0:12: 'x' : undeclared identifier
	khronosDiag = regexp.MustCompile(`^(ERROR|WARNING):\s*(\d+):(\d+):\s*(.*)$`)
)

// ParseDiagnostics splits a shader info log into diagnostics. Lines in an
// unknown format are kept as errors without a line number.
func ParseDiagnostics(infoLog string) []Diagnostic {
	var diags []Diagnostic
	for _, line := range strings.Split(infoLog, "\n") {
		line = strings.TrimRight(line, "\r\x00 \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		diags = append(diags, parseDiagnostic(line))
	}
	return diags
}

func parseDiagnostic(line string) Diagnostic {
	if m := mesaDiag.FindStringSubmatch(line); m != nil {
		return Diagnostic{
			Source:   atoi(m[1]),
			Line:     atoi(m[2]),
			Column:   atoi(m[3]),
			Severity: severity(m[4]),
			Message:  m[5],
		}
	}
	if m := nvidiaDiag.FindStringSubmatch(line); m != nil {
		return Diagnostic{
			Source:   atoi(m[1]),
			Line:     atoi(m[2]),
			Severity: severity(m[3]),
			Message:  m[4],
		}
	}
	if m := khronosDiag.FindStringSubmatch(line); m != nil {
		return Diagnostic{
			Source:   atoi(m[2]),
			Line:     atoi(m[3]),
			Severity: severity(m[1]),
			Message:  m[4],
		}
	}
	return Diagnostic{Message: strings.TrimSpace(line)}
}

func severity(s string) Severity {
	if strings.EqualFold(s, "warning") {
		return SeverityWarning
	}
	return SeverityError
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
