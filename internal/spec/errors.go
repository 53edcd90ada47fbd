package spec

import "fmt"

// MissingFieldError reports a required key absent from a page item in the
// spec document.
type MissingFieldError struct {
	Field   string
	Section string
	Index   int // position of the item within its section
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("page item %d in section %q: missing required field %q", e.Index, e.Section, e.Field)
}

// FieldTypeError reports a value that cannot be coerced to the field's
// declared type. Coercion is explicit and total: only the documented input
// representations are accepted, everything else fails with this error.
type FieldTypeError struct {
	Field string
	Value string
	Want  string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q: cannot interpret %q as %s", e.Field, e.Value, e.Want)
}
