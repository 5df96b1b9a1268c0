package diagnostic

import "fmt"

// Warning codes emitted during schema derivation.
const (
	// CodeDuplicatePath: the same dotted name appears more than once in the
	// input; the later entry wins.
	CodeDuplicatePath = "duplicate-path"

	// CodeFieldCollision: two distinct raw segments under one parent
	// normalize to the same field identifier.
	CodeFieldCollision = "field-collision"

	// CodeLeafDiscarded: a name is bound as a value but the same node also
	// gained children; the value binding is dropped and the namespace wins.
	CodeLeafDiscarded = "leaf-discarded"
)

// Diagnostic is a single warning about the input name list. None of these
// stop generation: the schema they describe is still produced, with the
// documented overwrite behavior, and the warning exists so the surprise is
// at least visible.
type Diagnostic struct {
	// Code is a stable identifier for this kind of warning.
	Code string
	// Message is the human-readable description.
	Message string
	// Path is the dotted path the warning relates to, if any.
	Path string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Path != "" {
		return d.Path + ": " + msg
	}

	return msg
}

// Diagnostics collects warnings from schema derivation.
type Diagnostics struct {
	Warnings []Diagnostic
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, path string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Code:    code,
		Message: message,
		Path:    path,
	})
}

// HasWarnings returns true if any warning was recorded.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge appends another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
}
