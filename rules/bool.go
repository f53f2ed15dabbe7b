package rules

import (
	fieldset "github.com/reoring/fieldset"
)

// BoolOpt configures Bool.
type BoolOpt struct {
	Required bool
	Default  any
}

// Bool builds a rule for bool-valued fields.
func Bool(key string, opts ...BoolOpt) fieldset.Rule {
	var opt BoolOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return fieldset.NewRule(key, func(key string, value any, data map[string]any) fieldset.Result {
		if _, ok := value.(bool); !ok {
			return invalidType(key, value, "bool")
		}
		return fieldset.ForValidValue(key, value)
	}, fieldset.RuleOpt{Required: opt.Required, Default: opt.Default})
}
