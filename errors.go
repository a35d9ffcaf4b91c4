package ofx

import "fmt"

// StructuralError reports a document that has no usable shape at all - no
// OFX root element, no recognizable statement containers, or a tag token
// that never terminates. It is always fatal.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "error - invalid structure: " + e.Reason
}

// ExtractionError reports a required field that is missing or malformed.
// It is fatal under fail-fast; in best-effort mode the owning entry is
// discarded and parsing continues with the next sibling.
type ExtractionError struct {
	Tag    string
	Value  string
	Reason string
}

func (e *ExtractionError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("error - cannot extract <%s>: %s (value %q)", e.Tag, e.Reason, e.Value)
	}
	return fmt.Sprintf("error - cannot extract <%s>: %s", e.Tag, e.Reason)
}

// FieldWarning reports an optional field that is present but empty or
// unparseable. It is recorded on the owning entity's warning list and, under
// fail-fast, promoted to a fatal error.
type FieldWarning struct {
	Tag    string
	Reason string
}

func (w *FieldWarning) Error() string {
	return fmt.Sprintf("warning - <%s>: %s", w.Tag, w.Reason)
}

// UnsupportedInputError reports an input value that cannot be parsed at all,
// such as a reader that cannot seek. It is returned before any parsing
// starts.
type UnsupportedInputError struct {
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	return "error - unsupported input: " + e.Reason
}
