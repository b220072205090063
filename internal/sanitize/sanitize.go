// Package sanitize hides secret values in loosely typed data before it
// reaches logs.
package sanitize

import "strings"

// DefaultMask replaces values judged secret.
const DefaultMask = "******"

// Mask returns a deep copy of v in which every map value whose key
// contains any of the keywords is replaced by DefaultMask. Lists are
// descended into; the input is never modified.
func Mask(v any, keywords []string) any {
	return MaskWith(v, keywords, DefaultMask)
}

// MaskWith is Mask with a caller-chosen replacement string.
func MaskWith(v any, keywords []string, mask string) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			if containsAny(k, keywords) {
				out[k] = mask
			} else {
				out[k] = MaskWith(item, keywords, mask)
			}
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = MaskWith(item, keywords, mask)
		}
		return out
	default:
		return v
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
