package games

import (
	"encoding/json"
	"fmt"
)

// paramInt reads an integer param. JSON numbers arrive as float64.
func paramInt(params map[string]any, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidParams, key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %q must be an integer, got %v", ErrInvalidParams, key, v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidParams, key, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %q must be a number, got %T", ErrInvalidParams, key, raw)
	}
}

// paramFloat reads a numeric param.
func paramFloat(params map[string]any, key string) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidParams, key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidParams, key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %q must be a number, got %T", ErrInvalidParams, key, raw)
	}
}

// paramString reads an optional string param.
func paramString(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// paramOptionalInt reads an int param that may be absent or null.
func paramOptionalInt(params map[string]any, key string) (int, bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	n, err := paramInt(params, key)
	return n, err == nil, err
}
