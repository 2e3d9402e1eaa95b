package variant

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/models"
)

// MarshalMembers encodes the declared fields of v followed by extra.
func MarshalMembers(v interface{}, extra map[string]json.RawMessage, known models.FieldSet) ([]byte, error) {
	body, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return AppendMembers(body, extra, known)
}

// AppendMembers adds extra to an encoded object like models.AppendMembers,
// marking the function strings found inside the extra values.
func AppendMembers(obj []byte, extra map[string]json.RawMessage, known models.FieldSet) ([]byte, error) {
	if len(extra) == 0 {
		return obj, nil
	}
	marked := make(map[string]json.RawMessage, len(extra))
	for name, raw := range extra {
		m, err := MarkFunctions(raw)
		if err != nil {
			return nil, err
		}
		marked[name] = m
	}
	return models.AppendMembers(obj, marked, known)
}

// UnmarshalMembers decodes data into v and returns the members v does not
// declare.
func UnmarshalMembers(data []byte, v interface{}, known models.FieldSet) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return models.ExtraMembers(data, known)
}
