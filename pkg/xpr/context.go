package xpr

import (
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/cwbudde/go-xpr/internal/value"
)

// ContextFromJSON decodes a JSON object's top-level members into a
// single Context, using gjson rather than encoding/json so integers,
// floats, and nested structures all map onto Value's tagged union
// without an intermediate map[string]any round-trip.
func ContextFromJSON(doc string) (Context, error) {
	result := gjson.Parse(doc)
	ctx := Context{}
	result.ForEach(func(key, val gjson.Result) bool {
		ctx[key.String()] = valueFromGJSON(val)
		return true
	})
	return ctx, nil
}

func valueFromGJSON(r gjson.Result) *Value {
	switch r.Type {
	case gjson.Null:
		return value.Null()
	case gjson.True:
		return value.Bool(true)
	case gjson.False:
		return value.Bool(false)
	case gjson.String:
		return value.String(r.Str)
	case gjson.Number:
		return numberFromGJSON(r)
	case gjson.JSON:
		if r.IsArray() {
			var elems []*Value
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, valueFromGJSON(v))
				return true
			})
			return value.NewArray(elems)
		}
		obj := value.NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.ObjectSet(k.String(), valueFromGJSON(v))
			return true
		})
		return obj
	default:
		return value.Null()
	}
}

// numberFromGJSON keeps a JSON number that has no fractional/exponent
// part as an integer, so contexts round-trip integer-vs-float the way
// spec §4.1's arithmetic promotion rules expect.
func numberFromGJSON(r gjson.Result) *Value {
	raw := r.Raw
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '.', 'e', 'E':
			return value.Float64(r.Float())
		}
	}
	n := r.Int()
	if n < 0 {
		return value.Int64(n)
	}
	u := r.Uint()
	if float64(u) == r.Float() {
		return value.Uint64(u)
	}
	return value.Int64(n)
}

// ContextFromYAML decodes a YAML document's top-level mapping into a
// Context via goccy/go-yaml's generic decode, then FromAny for the
// JSON-shaped leaves.
func ContextFromYAML(doc []byte) (Context, error) {
	var decoded map[string]any
	if err := yaml.Unmarshal(doc, &decoded); err != nil {
		return nil, err
	}
	ctx := Context{}
	for k, v := range decoded {
		ctx[k] = value.FromAny(v)
	}
	return ctx, nil
}
