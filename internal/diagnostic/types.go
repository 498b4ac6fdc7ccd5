package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"accessor-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeSyntax               = "E_SYNTAX"                // Malformed directive, tag or options file
	CodeDuplicateType        = "E_DUPLICATE_TYPE"        // Type configured in source and options file
	CodeUnknownType          = "E_UNKNOWN_TYPE"          // Options file names a type that was not loaded
	CodeUnknownField         = "E_UNKNOWN_FIELD"         // Options file names a field the type lacks
	CodeConstFn              = "W_CONST_FN"              // const_fn has no Go equivalent
	CodePtrDerefNonPointer   = "W_PTR_DEREF_NON_POINTER" // ptr_deref on a field that is not *T
	CodePtrDerefDisabled     = "W_PTR_DEREF_DISABLED"    // ptr_deref ignored, capability off
	CodeEmbeddedSkipped      = "I_EMBEDDED_SKIPPED"      // Embedded fields get no accessors
	CodeNotStruct            = "I_NOT_STRUCT"            // Directive on a non-struct type
	CodeNoAccessorsGenerated = "I_NO_ACCESSORS"          // Annotated type produced no methods
	CodeNameConflict         = "E_NAME_CONFLICT"         // Accessor name taken by a field or another accessor
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pos locates the diagnostic in source, when known.
	Pos token.Position
	// Type is the annotated type this relates to (if any).
	Type string
	// Field is the field this relates to (if any).
	Field string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, pos token.Position, typeName, field string) {
	d.Add(Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Type:     typeName,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, pos token.Position, typeName, field string) {
	d.Add(Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Type:     typeName,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, pos token.Position, typeName, field string) {
	d.Add(Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Type:     typeName,
		Field:    field,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Location returns "file:line:col", "file" or "" depending on what is known.
func (d Diagnostic) Location() string {
	switch {
	case d.Pos.IsValid():
		return d.Pos.String()
	case d.Pos.Filename != "":
		return d.Pos.Filename
	default:
		return ""
	}
}

// Subject returns "Type.Field", "Type" or "".
func (d Diagnostic) Subject() string {
	switch {
	case d.Type != "" && d.Field != "":
		return d.Type + "." + d.Field
	default:
		return d.Type
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if loc := d.Location(); loc != "" {
		prefix = append(prefix, loc)
	}

	if subject := d.Subject(); subject != "" {
		prefix = append(prefix, subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
