package rules

import (
	"fmt"
	"regexp"

	fieldset "github.com/reoring/fieldset"
	"github.com/reoring/fieldset/i18n"
)

// StringOpt configures String. MinLen/MaxLen are byte lengths; zero means
// unbounded. Pattern is an RE2 expression matched anywhere in the value.
type StringOpt struct {
	Required bool
	Default  any
	MinLen   int
	MaxLen   int
	Pattern  string
	OneOf    []string
}

// String builds a rule for string-valued fields. An invalid Pattern panics
// at build time, like regexp.MustCompile.
func String(key string, opts ...StringOpt) fieldset.Rule {
	var opt StringOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	var re *regexp.Regexp
	if opt.Pattern != "" {
		re = regexp.MustCompile(opt.Pattern)
	}
	return fieldset.NewRule(key, func(key string, value any, data map[string]any) fieldset.Result {
		s, ok := value.(string)
		if !ok {
			return invalidType(key, value, "string")
		}
		if opt.MinLen > 0 && len(s) < opt.MinLen {
			msg := fmt.Sprintf("%s: length %d < %d", i18n.T("too_short", nil), len(s), opt.MinLen)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		if opt.MaxLen > 0 && len(s) > opt.MaxLen {
			msg := fmt.Sprintf("%s: length %d > %d", i18n.T("too_long", nil), len(s), opt.MaxLen)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		if re != nil && !re.MatchString(s) {
			msg := fmt.Sprintf("%s: %s", i18n.T("pattern", nil), opt.Pattern)
			return fieldset.ForInvalidValue(key, value, msg)
		}
		if len(opt.OneOf) > 0 && !containsString(opt.OneOf, s) {
			return fieldset.ForInvalidValue(key, value, i18n.T("invalid_enum", nil))
		}
		return fieldset.ForValidValue(key, s)
	}, fieldset.RuleOpt{Required: opt.Required, Default: opt.Default})
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
