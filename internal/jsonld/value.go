package jsonld

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"caseview/internal/caseerr"
)

// Kind is the JSON type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	List
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case List:
		return "list"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON value. The zero Value is null.
//
// Non-integral numbers keep their source text in a Float value and are never
// coerced to integers.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
	list []Value
	obj  *Obj
}

// Obj is a JSON object that remembers key order.
type Obj struct {
	keys []string
	vals map[string]Value
}

func NullValue() Value            { return Value{} }
func BoolValue(b bool) Value      { return Value{kind: Bool, b: b} }
func IntValue(i int64) Value      { return Value{kind: Int, i: i} }
func FloatValue(raw string) Value { return Value{kind: Float, s: raw} }
func StringValue(s string) Value  { return Value{kind: String, s: s} }
func ListValue(items ...Value) Value {
	return Value{kind: List, list: items}
}

// ObjectValue builds an object from alternating key/value pairs.
func ObjectValue(pairs ...any) Value {
	o := &Obj{vals: make(map[string]Value, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		val, _ := pairs[i+1].(Value)
		o.Set(key, val)
	}
	return Value{kind: Object, obj: o}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == Null }

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == Bool
}

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == Int
}

// Str returns the string payload of a String value.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == String
}

// Number returns the textual form of an Int or Float value.
func (v Value) Number() (string, bool) {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10), true
	case Float:
		return v.s, true
	}
	return "", false
}

// Items returns the elements of a List value, or nil.
func (v Value) Items() []Value {
	if v.kind != List {
		return nil
	}
	return v.list
}

// Obj returns the object payload, or nil when v is not an object.
func (v Value) Obj() *Obj {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Field returns the member key of an object value, or null.
func (v Value) Field(key string) Value {
	if o := v.Obj(); o != nil {
		val, _ := o.Get(key)
		return val
	}
	return Value{}
}

// Has reports whether v is an object containing key.
func (v Value) Has(key string) bool {
	if o := v.Obj(); o != nil {
		_, ok := o.Get(key)
		return ok
	}
	return false
}

func (o *Obj) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	val, ok := o.vals[key]
	return val, ok
}

// Set stores key, keeping the position of the first insertion.
func (o *Obj) Set(key string, val Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

func (o *Obj) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

func (o *Obj) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Decode reads one JSON document from r. Malformed input is a SchemaKind
// error.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, caseerr.Wrap(caseerr.SchemaKind, err, "decode document")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, caseerr.New(caseerr.SchemaKind, "decode document: trailing data after top-level value")
	}
	return v, nil
}

// Parse decodes a JSON document held in memory.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i), nil
		}
		return FloatValue(t.String()), nil
	case json.Delim:
		switch t {
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return ListValue(items...), nil
		case '{':
			o := &Obj{vals: make(map[string]Value)}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is %T", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				o.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: Object, obj: o}, nil
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}
