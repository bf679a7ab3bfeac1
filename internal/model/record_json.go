package model

import (
	"encoding/json"
	"fmt"
)

type jsonField struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// MarshalJSON writes the record as an ordered list of name/value pairs.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make([]jsonField, len(r))
	for i, f := range r {
		out[i] = jsonField{Name: f.Name, Value: f.Value}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the form written by MarshalJSON. Lists come back as
// []string and null as "".
func (r *Record) UnmarshalJSON(data []byte) error {
	var in []jsonField
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	rec := make(Record, len(in))
	for i, f := range in {
		v, err := fieldValue(f.Value)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		rec[i] = Field{Name: f.Name, Value: v}
	}
	*r = rec
	return nil
}

func fieldValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []any:
		out := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list element %d is %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected %T", v)
	}
}
