package instrument

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// MaskedValue replaces every masked value.
const MaskedValue = "***"

// DefaultMaskFields are masked when no list is configured. They cover every
// secret a submitted form can carry.
var DefaultMaskFields = []string{"password", "confirm_password", "pin_key", "authorization", "cookie"}

// Masker hides the values of configured keys in log attributes, decoded JSON
// payloads and form values. Keys are matched case-insensitively.
type Masker struct {
	keys map[string]struct{}
}

// NewMasker builds a Masker for fields. Blank entries are ignored.
func NewMasker(fields ...string) Masker {
	keys := lo.FilterMap(fields, func(f string, _ int) (string, bool) {
		f = strings.ToLower(strings.TrimSpace(f))
		return f, f != ""
	})

	return Masker{keys: lo.Keyify(keys)}
}

// Enabled reports whether at least one key is masked.
func (m Masker) Enabled() bool {
	return len(m.keys) > 0
}

// Has reports whether key is masked.
func (m Masker) Has(key string) bool {
	_, ok := m.keys[strings.ToLower(key)]
	return ok
}

// Mentioned reports whether text contains any masked key. It is used to drop
// payloads that could not be parsed and masked.
func (m Masker) Mentioned(text string) bool {
	if !m.Enabled() || text == "" {
		return false
	}

	lower := strings.ToLower(text)
	for key := range m.keys {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}

// Value masks nested maps and slices as produced by encoding/json.
func (m Masker) Value(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, v2 := range val {
			if m.Has(k) {
				masked[k] = MaskedValue
			} else {
				masked[k] = m.Value(v2)
			}
		}
		return masked
	case map[string]string:
		return m.Value(lo.MapValues(val, func(s string, _ string) any { return s }))
	case map[string][]string:
		masked := make(map[string]any, len(val))
		for k, vs := range val {
			switch {
			case m.Has(k):
				masked[k] = MaskedValue
			case len(vs) == 1:
				masked[k] = vs[0]
			default:
				masked[k] = vs
			}
		}
		return masked
	case []any:
		return lo.Map(val, func(v2 any, _ int) any { return m.Value(v2) })
	default:
		return v
	}
}

// JSON decodes payload and masks it. It reports false when payload is not JSON.
func (m Masker) JSON(payload []byte) (any, bool) {
	if len(payload) == 0 {
		return nil, false
	}

	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, false
	}

	return m.Value(body), true
}

// Attr masks attr by key, then masks structured or JSON values inside it.
func (m Masker) Attr(attr slog.Attr) slog.Attr {
	if m.Has(attr.Key) {
		return slog.String(attr.Key, MaskedValue)
	}

	switch attr.Value.Kind() {
	case slog.KindGroup:
		attr.Value = slog.GroupValue(lo.Map(attr.Value.Group(), func(ga slog.Attr, _ int) slog.Attr {
			return m.Attr(ga)
		})...)
	case slog.KindString:
		s := attr.Value.String()
		if s == "" || (s[0] != '{' && s[0] != '[') {
			return attr
		}
		if masked, ok := m.JSON([]byte(s)); ok {
			if b, err := json.Marshal(masked); err == nil {
				attr.Value = slog.StringValue(string(b))
			}
		}
	case slog.KindAny:
		switch val := attr.Value.Any().(type) {
		case map[string]any, map[string]string, map[string][]string, []any:
			attr.Value = slog.AnyValue(m.Value(val))
		case []byte:
			if masked, ok := m.JSON(val); ok {
				if b, err := json.Marshal(masked); err == nil {
					attr.Value = slog.StringValue(string(b))
				}
			}
		}
	}

	return attr
}
