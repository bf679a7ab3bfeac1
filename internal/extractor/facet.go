package extractor

import (
	"errors"

	"caseview/internal/caseerr"
	"caseview/internal/jsonld"
)

// Facet reads the properties of one facet. Problems are recorded against the
// carrying node and the default is returned, so a record always gets built.
type Facet struct {
	NodeID string
	Type   string
	Value  jsonld.Value

	issues *caseerr.List
}

func newFacet(nodeID string, v jsonld.Value, issues *caseerr.List) *Facet {
	return &Facet{NodeID: nodeID, Value: v, issues: issues}
}

func (f *Facet) note(err error) {
	if err == nil || f.issues == nil {
		return
	}
	var ce *caseerr.Error
	if errors.As(err, &ce) {
		f.issues.Add(ce.At(f.NodeID, ""))
		return
	}
	f.issues.Add(err)
}

func (f *Facet) String(key, def string) string {
	s, err := jsonld.GetString(f.Value, key, def)
	f.note(err)
	return s
}

func (f *Facet) Integer(key, def string) string {
	s, err := jsonld.GetIntegerAsString(f.Value, key, def)
	f.note(err)
	return s
}

func (f *Facet) Text(key, def string) string {
	s, err := jsonld.GetText(f.Value, key, def)
	f.note(err)
	return s
}

func (f *Facet) Time(key string) string {
	s, err := jsonld.GetTime(f.Value, key)
	f.note(err)
	return s
}

func (f *Facet) Ref(key string) string {
	id, err := jsonld.GetRef(f.Value, key)
	f.note(err)
	return id
}

func (f *Facet) Refs(key string) []string {
	ids, err := jsonld.GetRefs(f.Value, key)
	f.note(err)
	return ids
}

// Sub returns a reader over the nested object at key. For a list the first
// element is used. A missing member yields an empty reader.
func (f *Facet) Sub(key string) *Facet {
	items := jsonld.AsList(f.Value.Field(key))
	var v jsonld.Value
	if len(items) > 0 {
		v = items[0]
	}
	if !v.IsNull() && v.Kind() != jsonld.Object {
		f.note(caseerr.New(caseerr.TypeKind, "expected object, got %s", v.Kind()).At("", key))
		v = jsonld.NullValue()
	}
	return &Facet{NodeID: f.NodeID, Type: f.Type, Value: v, issues: f.issues}
}

func observable(name string) string {
	return "uco-observable:" + name
}
