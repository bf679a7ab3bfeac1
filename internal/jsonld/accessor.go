package jsonld

import (
	"errors"
	"strconv"

	"caseview/internal/caseerr"
)

// NoTime is the placeholder used for timestamps that are absent.
const NoTime = "1900-01-01T00:00:00"

const (
	KeyID    = "@id"
	KeyType  = "@type"
	KeyValue = "@value"
)

// ErrMissingValue marks a typed literal that carries no @value. A document
// containing one cannot be loaded.
var ErrMissingValue = errors.New("typed literal without @value")

func missingValue() *caseerr.Error {
	return caseerr.Wrap(caseerr.SchemaKind, ErrMissingValue, "malformed typed literal")
}

// Get returns the raw member key of node, or def when it is absent or null.
// Typed literals are returned as they are.
func Get(node Value, key string, def Value) Value {
	v := node.Field(key)
	if v.IsNull() {
		return def
	}
	return v
}

// GetString returns member key as a string, or def when absent.
func GetString(node Value, key, def string) (string, error) {
	v := node.Field(key)
	if v.IsNull() {
		return def, nil
	}
	s, ok := v.Str()
	if !ok {
		return def, caseerr.New(caseerr.TypeKind, "expected string, got %s", v.Kind()).At("", key)
	}
	return s, nil
}

// GetIntegerAsString returns member key as decimal text. Integers are
// formatted, strings pass through, and typed literals must carry a numeric
// @value.
func GetIntegerAsString(node Value, key, def string) (string, error) {
	v := node.Field(key)
	switch v.Kind() {
	case Null:
		return def, nil
	case Int:
		return strconv.FormatInt(v.i, 10), nil
	case Float:
		// integers beyond int64 decode as Float with their digits intact
		if isInteger(v.s) {
			return v.s, nil
		}
	case String:
		return v.s, nil
	case Object:
		lit, ok := v.obj.Get(KeyValue)
		if !ok {
			return def, missingValue().At("", key)
		}
		switch lit.Kind() {
		case Int:
			return strconv.FormatInt(lit.i, 10), nil
		case Float:
			if isInteger(lit.s) {
				return lit.s, nil
			}
			return def, caseerr.New(caseerr.ValueKind, "@value %s is not an integer", lit.s).At("", key)
		case String:
			if !isInteger(lit.s) {
				return def, caseerr.New(caseerr.ValueKind, "@value %q is not an integer", lit.s).At("", key)
			}
			return lit.s, nil
		default:
			return def, caseerr.New(caseerr.ValueKind, "@value is %s, not an integer", lit.Kind()).At("", key)
		}
	}
	return def, caseerr.New(caseerr.TypeKind, "expected integer, got %s", v.Kind()).At("", key)
}

// Literal unwraps a typed literal to its @value. Other values are returned
// unchanged.
func Literal(v Value) (Value, error) {
	lit, err := literal(v)
	if err != nil {
		return Value{}, err
	}
	return lit, nil
}

func literal(v Value) (Value, *caseerr.Error) {
	if v.Kind() != Object {
		return v, nil
	}
	lit, ok := v.obj.Get(KeyValue)
	if !ok {
		return Value{}, missingValue()
	}
	return lit, nil
}

// GetText returns member key as scalar text, unwrapping a typed literal.
// Numbers and booleans are rendered in their JSON form.
func GetText(node Value, key, def string) (string, error) {
	raw := node.Field(key)
	if raw.IsNull() {
		return def, nil
	}
	v, err := literal(raw)
	if err != nil {
		return def, err.At("", key)
	}
	switch v.Kind() {
	case Null:
		return def, nil
	case String:
		return v.s, nil
	case Int, Float:
		s, _ := v.Number()
		return s, nil
	case Bool:
		return strconv.FormatBool(v.b), nil
	default:
		return def, caseerr.New(caseerr.TypeKind, "expected scalar, got %s", v.Kind()).At("", key)
	}
}

// GetTime returns a timestamp property, defaulting to NoTime.
func GetTime(node Value, key string) (string, error) {
	return GetText(node, key, NoTime)
}

// RefID returns the @id of a node pointer.
func RefID(v Value) (string, bool) {
	id, ok := v.Field(KeyID).Str()
	return id, ok && id != ""
}

// GetRef returns the id referenced by member key. A list yields its first
// pointer. An absent member yields "".
func GetRef(node Value, key string) (string, error) {
	ids, err := GetRefs(node, key)
	if len(ids) == 0 {
		return "", err
	}
	return ids[0], err
}

// GetRefs returns every id referenced by member key, accepting a single
// pointer or a list of pointers. Malformed elements are skipped and reported.
func GetRefs(node Value, key string) ([]string, error) {
	raw := node.Field(key)
	var ids []string
	var firstErr error
	for _, item := range AsList(raw) {
		switch item.Kind() {
		case Object:
			id, ok := RefID(item)
			if !ok {
				if firstErr == nil {
					firstErr = caseerr.New(caseerr.SchemaKind, "node reference without @id").At("", key)
				}
				continue
			}
			ids = append(ids, id)
		case String:
			ids = append(ids, item.s)
		default:
			if firstErr == nil {
				firstErr = caseerr.New(caseerr.TypeKind, "expected node reference, got %s", item.Kind()).At("", key)
			}
		}
	}
	return ids, firstErr
}

// Types returns the @type of node. The first element is the authoritative
// type.
func Types(node Value) ([]string, error) {
	raw := node.Field(KeyType)
	switch raw.Kind() {
	case Null:
		return nil, nil
	case String:
		return []string{raw.s}, nil
	case List:
		out := make([]string, 0, len(raw.list))
		for _, item := range raw.list {
			s, ok := item.Str()
			if !ok {
				return out, caseerr.New(caseerr.TypeKind, "@type element is %s", item.Kind()).At("", KeyType)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, caseerr.New(caseerr.TypeKind, "@type is %s", raw.Kind()).At("", KeyType)
	}
}

// PrimaryType returns the first @type of node, or "".
func PrimaryType(node Value) (string, error) {
	types, err := Types(node)
	if len(types) == 0 {
		return "", err
	}
	return types[0], err
}

// AsList normalizes a value that may be a single item or a list. Null yields
// nil.
func AsList(v Value) []Value {
	switch v.Kind() {
	case Null:
		return nil
	case List:
		return v.list
	default:
		return []Value{v}
	}
}

func isInteger(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
