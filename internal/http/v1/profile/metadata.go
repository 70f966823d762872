package profile

import "fmt"

// normalizeMetadata rewrites nested maps decoded from CBOR, which arrive as
// map[any]any, into map[string]any so the profile can be written as JSON.
// Non-string keys are rendered with fmt.Sprint.
func normalizeMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			out[key] = normalizeValue(item)
		}
		return out
	case map[string]any:
		return normalizeMetadata(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
