package rules

import (
	"encoding/json"
	"fmt"
	"math"

	fieldset "github.com/reoring/fieldset"
	"github.com/reoring/fieldset/i18n"
)

// IntOpt configures Int. Min/Max are inclusive; nil means unbounded.
type IntOpt struct {
	Required bool
	Default  any
	Min      *int64
	Max      *int64
	OneOf    []int64
}

// Int builds a rule for integer-valued fields. All Go integer widths are
// accepted, plus json.Number and floats that carry an integral value (the
// JSON codec decodes numbers as json.Number).
func Int(key string, opts ...IntOpt) fieldset.Rule {
	var opt IntOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return fieldset.NewRule(key, func(key string, value any, data map[string]any) fieldset.Result {
		n, ok := asInt64(value)
		if !ok {
			return invalidType(key, value, "integer")
		}
		if opt.Min != nil && n < *opt.Min {
			msg := fmt.Sprintf("%s: %d < %d", i18n.T("too_small", nil), n, *opt.Min)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		if opt.Max != nil && n > *opt.Max {
			msg := fmt.Sprintf("%s: %d > %d", i18n.T("too_big", nil), n, *opt.Max)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		if len(opt.OneOf) > 0 && !containsInt64(opt.OneOf, n) {
			return fieldset.ForInvalidValue(key, value, i18n.T("invalid_enum", nil))
		}
		return fieldset.ForValidValue(key, value)
	}, fieldset.RuleOpt{Required: opt.Required, Default: opt.Default})
}

// FloatOpt configures Float. Min/Max are inclusive; nil means unbounded.
type FloatOpt struct {
	Required bool
	Default  any
	Min      *float64
	Max      *float64
}

// Float builds a rule for numeric fields. NaN and Inf are rejected.
func Float(key string, opts ...FloatOpt) fieldset.Rule {
	var opt FloatOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return fieldset.NewRule(key, func(key string, value any, data map[string]any) fieldset.Result {
		f, ok := asFloat64(value)
		if !ok {
			return invalidType(key, value, "number")
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fieldset.ForInvalidValue(key, value, i18n.T("invalid_value", nil))
		}
		if opt.Min != nil && f < *opt.Min {
			msg := fmt.Sprintf("%s: %v < %v", i18n.T("too_small", nil), f, *opt.Min)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		if opt.Max != nil && f > *opt.Max {
			msg := fmt.Sprintf("%s: %v > %v", i18n.T("too_big", nil), f, *opt.Max)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		return fieldset.ForValidValue(key, value)
	}, fieldset.RuleOpt{Required: opt.Required, Default: opt.Default})
}

// asInt64 widens the usual integer shapes to int64. Floats qualify only when
// integral; out-of-range values do not qualify.
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float32:
		return asInt64(float64(v))
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func containsInt64(set []int64, n int64) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}
