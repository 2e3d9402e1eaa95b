package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// FieldSet is the set of JSON member names a struct type declares.
type FieldSet map[string]struct{}

// Has reports whether name is declared.
func (f FieldSet) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// FieldsOf lists the JSON member names of a struct type, following
// embedded structs the way encoding/json flattens them.
func FieldsOf(t reflect.Type) FieldSet {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	fields := FieldSet{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for k := range FieldsOf(ft) {
					fields[k] = struct{}{}
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = struct{}{}
	}
	return fields
}

// ExtraMembers returns the members of a JSON object that known does not
// declare. "type" is treated as declared since it selects the record.
func ExtraMembers(data []byte, known FieldSet) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for name, raw := range all {
		if name == "type" || known.Has(name) {
			continue
		}
		if extra == nil {
			extra = map[string]json.RawMessage{}
		}
		extra[name] = raw
	}
	return extra, nil
}

// AppendMembers adds extra members, in name order, to an encoded object.
// Names that known declares, and "type", are skipped.
func AppendMembers(obj []byte, extra map[string]json.RawMessage, known FieldSet) ([]byte, error) {
	names := make([]string, 0, len(extra))
	for name := range extra {
		if name != "type" && !known.Has(name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return obj, nil
	}
	sort.Strings(names)

	obj = bytes.TrimSpace(obj)
	var buf bytes.Buffer
	buf.Write(obj[:len(obj)-1])
	empty := len(bytes.TrimSpace(obj[1:len(obj)-1])) == 0
	for i, name := range names {
		if i > 0 || !empty {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		raw := extra[name]
		if len(raw) == 0 {
			raw = json.RawMessage("null")
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
