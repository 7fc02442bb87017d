package schema

import "github.com/aeokit/aeograph/internal/schema/model"

// stripEmpty removes nils, empty strings and empty containers from a value,
// depth-first. An object or list that becomes empty after its children are
// stripped is itself dropped. Map and list shapes are preserved for whatever
// survives; scalars pass through untouched.
func stripEmpty(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		if val == "" {
			return nil, false
		}
		return val, true
	case model.Node:
		return stripMap(map[string]any(val))
	case map[string]any:
		return stripMap(val)
	case []model.Node:
		items := make([]any, len(val))
		for i, n := range val {
			items[i] = n
		}
		return stripList(items)
	case []any:
		return stripList(val)
	case []string:
		var out []string
		for _, s := range val {
			if s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return val, true
	}
}

func stripMap(m map[string]any) (any, bool) {
	out := model.Node{}
	for k, v := range m {
		if cleaned, ok := stripEmpty(v); ok {
			out[k] = cleaned
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func stripList(items []any) (any, bool) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if cleaned, ok := stripEmpty(item); ok {
			out = append(out, cleaned)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
