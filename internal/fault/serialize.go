// ABOUTME: Conversion of arbitrary call values into JSON-safe primitives
// ABOUTME: Dispatches on primitive, container and opaque kinds with pluggable encoders
package fault

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Kind classifies a value for serialization.
type Kind int

const (
	KindPrimitive Kind = iota
	KindContainer
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindContainer:
		return "container"
	default:
		return "opaque"
	}
}

// JournalValuer lets a type choose its own journal representation. The
// returned value is serialized again.
type JournalValuer interface {
	JournalValue() any
}

// Encoder turns a value of one registered type into a JSON-safe value.
type Encoder func(v any) any

const maxDepth = 32

// maxDepthMarker replaces values nested deeper than maxDepth, which also
// terminates cyclic maps and slices.
const maxDepthMarker = "<max depth exceeded>"

// Serializer converts values to primitives, []any and ordered objects.
type Serializer struct {
	encoders map[reflect.Type]Encoder
}

// NewSerializer returns a Serializer with encoders for time values.
func NewSerializer() *Serializer {
	s := &Serializer{encoders: make(map[reflect.Type]Encoder)}
	s.Register(time.Time{}, func(v any) any { return v.(time.Time).Format(time.RFC3339Nano) })
	s.Register(time.Duration(0), func(v any) any { return v.(time.Duration).String() })
	return s
}

// Register installs enc for values with the same dynamic type as sample.
func (s *Serializer) Register(sample any, enc Encoder) {
	s.encoders[reflect.TypeOf(sample)] = enc
}

// Classify reports how v will be serialized.
func (s *Serializer) Classify(v any) Kind {
	if v == nil {
		return KindPrimitive
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return KindPrimitive
	}
	if _, ok := s.encoders[reflect.TypeOf(v)]; ok {
		return KindOpaque
	}
	switch v.(type) {
	case JournalValuer, error, encoding.TextMarshaler:
		return KindOpaque
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindPrimitive
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Pointer:
		return KindContainer
	default:
		return KindOpaque
	}
}

// Value returns the JSON-safe form of v.
func (s *Serializer) Value(v any) any {
	return s.value(v, 0)
}

func (s *Serializer) value(v any, depth int) any {
	if depth > maxDepth {
		return maxDepthMarker
	}
	switch s.Classify(v) {
	case KindPrimitive:
		return primitive(v)
	case KindContainer:
		return s.container(reflect.ValueOf(v), depth)
	default:
		return s.opaque(v, depth)
	}
}

func primitive(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Pointer:
		return nil
	default:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return f
	}
}

func (s *Serializer) container(rv reflect.Value, depth int) any {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return s.value(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = s.value(rv.Index(i).Interface(), depth+1)
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		obj := make(object, 0, len(keys))
		for _, k := range keys {
			obj = append(obj, field{Key: fmt.Sprint(k.Interface()), Value: s.value(rv.MapIndex(k).Interface(), depth+1)})
		}
		sort.Slice(obj, func(i, j int) bool { return obj[i].Key < obj[j].Key })
		return obj
	default:
		t := rv.Type()
		obj := make(object, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			obj = append(obj, field{Key: f.Name, Value: s.value(rv.Field(i).Interface(), depth+1)})
		}
		return obj
	}
}

func (s *Serializer) opaque(v any, depth int) any {
	if enc, ok := s.encoders[reflect.TypeOf(v)]; ok {
		return s.value(enc(v), depth+1)
	}
	switch t := v.(type) {
	case JournalValuer:
		return s.value(t.JournalValue(), depth+1)
	case error:
		return t.Error()
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(text)
	}
	return fmt.Sprint(v)
}

type field struct {
	Key   string
	Value any
}

// object is a JSON object that keeps its key order.
type object []field

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
