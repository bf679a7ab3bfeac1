package model

import "strings"

// Field is one named value of a record. Value is a string or a []string.
type Field struct {
	Name  string
	Value any
}

// Record is the flat, ordered view of one registry entry.
type Record []Field

// Recorder is implemented by every registry entry.
type Recorder interface {
	RecordID() string
	Record() Record
}

func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Text returns field name as display text. Lists are joined with ", ".
func (r Record) Text(name string) string {
	v, _ := r.Get(name)
	return FieldText(v)
}

func (r Record) Names() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.Name
	}
	return out
}

func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r))
	for _, f := range r {
		out[f.Name] = f.Value
	}
	return out
}

// FieldText renders a field value for display.
func FieldText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	default:
		return ""
	}
}

// Ref is a reference to another registry entry. ID stays the raw @id; Text
// is filled by the cross-reference pass.
type Ref struct {
	ID       string
	Text     string
	Resolved bool
	fixed    bool
}

// NewRef returns an unresolved reference to id.
func NewRef(id string) Ref {
	return Ref{ID: id}
}

// FixedRef returns a reference whose text is known at classification time.
func FixedRef(text string) Ref {
	return Ref{Text: text, Resolved: true, fixed: true}
}

// Resolve recomputes Text from ID. Dangling or empty ids take placeholder.
// It reports whether the id was found.
func (r *Ref) Resolve(lookup func(id string) (string, bool), placeholder string) bool {
	if r.fixed {
		return true
	}
	r.Resolved = true
	if r.ID != "" {
		if text, ok := lookup(r.ID); ok {
			r.Text = text
			return true
		}
	}
	r.Text = placeholder
	return false
}

// Display is the resolved text, or the raw id before resolution.
func (r Ref) Display() string {
	if r.Resolved {
		return r.Text
	}
	return r.ID
}

// RefList is a multi-valued reference.
type RefList struct {
	IDs      []string
	Texts    []string
	Resolved bool
}

func NewRefList(ids []string) RefList {
	return RefList{IDs: ids}
}

// Resolve recomputes Texts from IDs. Dangling ids are replaced by
// placeholder, or dropped when drop is set. It returns the number of ids
// found.
func (r *RefList) Resolve(lookup func(id string) (string, bool), placeholder string, drop bool) int {
	found := 0
	texts := make([]string, 0, len(r.IDs))
	for _, id := range r.IDs {
		if text, ok := lookup(id); ok {
			texts = append(texts, text)
			found++
			continue
		}
		if !drop {
			texts = append(texts, placeholder)
		}
	}
	r.Texts = texts
	r.Resolved = true
	return found
}

func (r RefList) Display() []string {
	if r.Resolved {
		return nonNil(r.Texts)
	}
	return nonNil(r.IDs)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
