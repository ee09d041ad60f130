package dashboard

import "encoding/json"

func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func getArray(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

func getFirstInArray(m map[string]any, key string) map[string]any {
	arr := getArray(m, key)
	if len(arr) > 0 {
		if v, ok := arr[0].(map[string]any); ok {
			return v
		}
	}
	return nil
}

// getFloat reports whether key holds a number. A nil map, a missing key and a
// non-numeric value all count as absent.
func getFloat(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
