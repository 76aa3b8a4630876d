package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationError reports a parameter that violates its declared schema.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid parameters: " + e.Constraint
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Constraint)
}

func (e *ValidationError) InvalidInput() bool { return true }

// Validate checks raw against the schema and returns the normalized value: defaults
// filled in, integers as int, unknown object fields rejected. It performs no I/O.
//
// For a scalar schema, raw may also be an object holding only ScalarField, in which
// case that value is validated. Function-calling providers always send objects.
func (s *Schema) Validate(raw any) (any, error) {
	if s == nil {
		return nil, nil
	}
	if s.Type == TypeObject {
		return s.validateObject("", raw)
	}
	if m, ok := raw.(map[string]any); ok {
		v, found := m[ScalarField]
		if !found || len(m) != 1 {
			return nil, &ValidationError{Constraint: fmt.Sprintf("expected a single %q field", ScalarField)}
		}
		raw = v
	}
	if raw == nil {
		return nil, &ValidationError{Constraint: "a value is required"}
	}
	return s.validateValue("", raw)
}

func (s *Schema) validateObject(field string, raw any) (map[string]any, error) {
	var in map[string]any
	switch v := raw.(type) {
	case nil:
		in = map[string]any{}
	case map[string]any:
		in = v
	default:
		return nil, &ValidationError{Field: field, Constraint: "must be an object"}
	}

	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := s.Properties[k]; !ok {
			return nil, &ValidationError{Field: join(field, k), Constraint: "unknown field"}
		}
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]any, len(names))
	for _, name := range names {
		prop := s.Properties[name]
		v, present := in[name]
		if !present || v == nil {
			if slices.Contains(s.Required, name) {
				return nil, &ValidationError{Field: join(field, name), Constraint: "is required"}
			}
			if prop.Default != nil {
				out[name] = prop.Default
			}
			continue
		}
		normalized, err := prop.validateValue(join(field, name), v)
		if err != nil {
			return nil, err
		}
		out[name] = normalized
	}
	return out, nil
}

func (s *Schema) validateValue(field string, v any) (any, error) {
	switch s.Type {
	case TypeString:
		str, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Field: field, Constraint: "must be a string"}
		}
		if s.MinLength != nil && utf8.RuneCountInString(str) < *s.MinLength {
			return nil, &ValidationError{Field: field, Constraint: fmt.Sprintf("must be at least %d character(s)", *s.MinLength)}
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return nil, &ValidationError{Field: field, Constraint: "must be one of " + strings.Join(s.Enum, ", ")}
		}
		return str, nil

	case TypeInteger:
		n, ok := toInteger(v)
		if !ok {
			return nil, &ValidationError{Field: field, Constraint: "must be an integer"}
		}
		if s.Minimum != nil && float64(n) < *s.Minimum {
			return nil, &ValidationError{Field: field, Constraint: fmt.Sprintf("must be >= %v", *s.Minimum)}
		}
		return int(n), nil

	case TypeNumber:
		f, ok := toFloat(v)
		if !ok {
			return nil, &ValidationError{Field: field, Constraint: "must be a number"}
		}
		if s.Minimum != nil && f < *s.Minimum {
			return nil, &ValidationError{Field: field, Constraint: fmt.Sprintf("must be >= %v", *s.Minimum)}
		}
		return f, nil

	case TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, &ValidationError{Field: field, Constraint: "must be a boolean"}
		}
		return b, nil

	case TypeArray:
		items, ok := v.([]any)
		if !ok {
			return nil, &ValidationError{Field: field, Constraint: "must be an array"}
		}
		if s.Items == nil {
			return items, nil
		}
		out := make([]any, len(items))
		for i, item := range items {
			normalized, err := s.Items.validateValue(fmt.Sprintf("%s[%d]", field, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil

	case TypeObject:
		return s.validateObject(field, v)

	default:
		return v, nil
	}
}

func toInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatToInteger(float64(n))
	case float64:
		return floatToInteger(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInteger(f)
	default:
		return 0, false
	}
}

func floatToInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		i, ok := toInteger(v)
		return float64(i), ok
	}
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
