package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one dictionary entry: either a Leaf template or an Object of
// nested entries. It is a sealed union; the shape of every entry is decided
// once when the dictionary is built, not re-checked during lookups.
type Value interface {
	value()
}

// Leaf is a translation template.
type Leaf string

// Object is a nested group of dictionary entries.
type Object map[string]Value

func (Leaf) value()   {}
func (Object) value() {}

// FromMap converts loader output (nested maps as decoded from JSON, YAML or
// TOML) into the tagged dictionary form. Nested maps become Objects, slices
// become Objects keyed by element index, and every scalar becomes a Leaf.
func FromMap(data map[string]any) Object {
	obj := make(Object, len(data))
	for key, raw := range data {
		obj[key] = fromValue(raw)
	}
	return obj
}

func fromValue(raw any) Value {
	switch v := raw.(type) {
	case string:
		return Leaf(v)
	case map[string]any:
		return FromMap(v)
	case map[string]string:
		obj := make(Object, len(v))
		for key, s := range v {
			obj[key] = Leaf(s)
		}
		return obj
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps.
		obj := make(Object, len(v))
		for key, item := range v {
			obj[fmt.Sprint(key)] = fromValue(item)
		}
		return obj
	case []any:
		obj := make(Object, len(v))
		for idx, item := range v {
			obj[strconv.Itoa(idx)] = fromValue(item)
		}
		return obj
	case []string:
		obj := make(Object, len(v))
		for idx, s := range v {
			obj[strconv.Itoa(idx)] = Leaf(s)
		}
		return obj
	case nil:
		return Leaf("")
	default:
		return Leaf(fmt.Sprint(v))
	}
}

// ToMap converts an Object back into plain nested maps, the shape handed out
// for whole-object lookups.
func (o Object) ToMap() map[string]any {
	out := make(map[string]any, len(o))
	for key, v := range o {
		switch entry := v.(type) {
		case Leaf:
			out[key] = string(entry)
		case Object:
			out[key] = entry.ToMap()
		}
	}
	return out
}

// resolve walks the object along the key's separator-delimited segments.
// A flat entry matching the whole key wins over segment traversal, so keys
// containing literal separators stay reachable. Walking stops without a
// result when a Leaf is hit with segments remaining; a defined-but-empty
// Leaf still resolves. The boolean distinguishes "absent" from "present".
func (o Object) resolve(key, sep string) (Value, bool) {
	if v, ok := o[key]; ok {
		return v, true
	}
	if sep == "" || !strings.Contains(key, sep) {
		return nil, false
	}

	var cur Value = o
	for seg := range strings.SplitSeq(key, sep) {
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}
