package caseerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a problem found while loading an evidence graph.
type Kind string

const (
	// SchemaKind reports a structural violation: missing root arrays, a typed
	// literal without @value, a relationship without source or target.
	SchemaKind Kind = "schema"
	// TypeKind reports a property whose JSON type is not the expected one.
	TypeKind Kind = "type"
	// ValueKind reports a value of the right type with unusable content.
	ValueKind Kind = "value"
	// LookupKind reports a reference to an id that is not in the registry.
	LookupKind Kind = "lookup"
)

// Error is a single classified problem. NodeID and Property locate it in the
// document when known.
type Error struct {
	Kind     Kind
	NodeID   string
	Property string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "caseerr <nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Kind, e.Message)
	if e.Property != "" {
		fmt.Fprintf(&b, " (property %s)", e.Property)
	}
	if e.NodeID != "" {
		fmt.Fprintf(&b, " at %s", e.NodeID)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error without location.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// At returns a copy of e located at the given node and property. Empty
// arguments keep the current location.
func (e *Error) At(nodeID, property string) *Error {
	out := *e
	if nodeID != "" {
		out.NodeID = nodeID
	}
	if property != "" {
		out.Property = property
	}
	return &out
}

// Locate places err at nodeID when it is an *Error; other errors are
// returned unchanged.
func Locate(err error, nodeID string) error {
	var ce *Error
	if errors.As(err, &ce) && ce != nil {
		return ce.At(nodeID, "")
	}
	return err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) && ce != nil {
		return ce.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// List collects non-fatal problems of a load.
type List []*Error

// Add appends err when it is non-nil. Errors that are not *Error are recorded
// as TypeKind.
func (l *List) Add(err error) {
	if err == nil {
		return
	}
	var ce *Error
	if !errors.As(err, &ce) {
		ce = Wrap(TypeKind, err, "unclassified")
	}
	*l = append(*l, ce)
}

// Addf appends a new located problem.
func (l *List) Addf(kind Kind, nodeID, property, format string, args ...any) {
	*l = append(*l, &Error{
		Kind:     kind,
		NodeID:   nodeID,
		Property: property,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Count returns the number of collected problems of the given kind.
func (l List) Count(kind Kind) int {
	n := 0
	for _, e := range l {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Counts groups collected problems by kind.
func (l List) Counts() map[Kind]int {
	out := make(map[Kind]int)
	for _, e := range l {
		out[e.Kind]++
	}
	return out
}

// Err returns l as an error, or nil when empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no problems"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}
