package jsonapi

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value variants.
const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged field value: a scalar, a nested entity, or a sequence of entities.
// The zero Value is null.
type Value struct {
	kind     Kind
	scalar   any
	mapping  Entity
	sequence []Entity
}

// Scalar wraps a number, boolean, string or any other leaf value. A nil v yields Null.
func Scalar(v any) Value {
	if v == nil {
		return Value{}
	}
	return Value{kind: KindScalar, scalar: v}
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Mapping wraps a nested entity.
func Mapping(e Entity) Value {
	return Value{kind: KindMapping, mapping: e}
}

// Sequence wraps an ordered list of entities. The slice is copied.
func Sequence(items ...Entity) Value {
	seq := make([]Entity, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, sequence: seq}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Scalar returns the wrapped leaf value, or nil when v is not a scalar.
func (v Value) Scalar() any { return v.scalar }

// Mapping returns the nested entity, or an empty entity when v is not a mapping.
func (v Value) Mapping() Entity { return v.mapping }

// Sequence returns the entities of a sequence value.
func (v Value) Sequence() []Entity {
	out := make([]Entity, len(v.sequence))
	copy(out, v.sequence)
	return out
}

// Text returns the textual representation of v. Scalars use their default
// formatting; mappings and sequences render as JSON, which can fail.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindScalar:
		if s, ok := v.scalar.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v.scalar), nil
	case KindMapping, KindSequence:
		b, err := v.MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("render %s value: %w", v.kind, err)
		}
		return string(b), nil
	default:
		return "", nil
	}
}

// String is Text for use in formatting. A value that cannot be rendered
// prints as %!v(ERROR: ...).
func (v Value) String() string {
	s, err := v.Text()
	if err != nil {
		return fmt.Sprintf("%%!v(ERROR: %v)", err)
	}
	return s
}

// MarshalJSON encodes v. Mappings keep their field order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		return json.MarshalNoEscape(v.scalar)
	case KindMapping:
		return v.mapping.MarshalJSON()
	case KindSequence:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.sequence {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

// isNumberOrBool reports whether a scalar is copied into attributes unchanged.
func isNumberOrBool(v any) bool {
	switch v.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// Field is one named value of an Entity.
type Field struct {
	Key   string
	Value Value
}

// Entity is an ordered mapping from field name to Value. Entities are immutable; the
// With method returns a modified copy.
type Entity struct {
	fields []Field
}

// NewEntity builds an entity from fields in order. A repeated key replaces the earlier
// value in its original position.
func NewEntity(fields ...Field) Entity {
	e := Entity{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		if i := e.index(f.Key); i >= 0 {
			e.fields[i].Value = f.Value
			continue
		}
		e.fields = append(e.fields, f)
	}
	return e
}

func (e Entity) index(key string) int {
	for i, f := range e.fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (e Entity) Get(key string) (Value, bool) {
	if i := e.index(key); i >= 0 {
		return e.fields[i].Value, true
	}
	return Value{}, false
}

// Len returns the number of fields.
func (e Entity) Len() int { return len(e.fields) }

// Keys returns the field names in order.
func (e Entity) Keys() []string {
	keys := make([]string, len(e.fields))
	for i, f := range e.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in order.
func (e Entity) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// With returns a copy of e with key set to v.
func (e Entity) With(key string, v Value) Entity {
	fields := make([]Field, len(e.fields), len(e.fields)+1)
	copy(fields, e.fields)
	return NewEntity(append(fields, Field{Key: key, Value: v})...)
}

// MarshalJSON encodes e as a JSON object with keys in field order.
func (e Entity) MarshalJSON() ([]byte, error) {
	return marshalObject(len(e.fields), func(i int) (string, any) {
		return e.fields[i].Key, e.fields[i].Value
	})
}

// marshalObject writes n key/value pairs as a JSON object, preserving order.
func marshalObject(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		key, val := entry(i)
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.MarshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.MarshalNoEscape(val)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
