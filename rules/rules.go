// Package rules provides ready-made Rule builders for the common scalar
// field shapes. Each builder takes an option struct (last wins) and returns
// an immutable fieldset.Rule; constraint failures surface as invalid-value
// Results with messages from the i18n dictionary.
package rules

import (
	"fmt"

	fieldset "github.com/reoring/fieldset"
	"github.com/reoring/fieldset/i18n"
)

// CheckFunc is a caller-supplied constraint over a present value. data is
// the full payload, for cross-field checks. A non-nil error marks the value
// invalid with the error text as message.
type CheckFunc func(value any, data map[string]any) error

// AnyOpt configures Any.
type AnyOpt struct {
	Required bool
	Default  any
	// Check runs against the present value; nil accepts everything.
	Check CheckFunc
}

// Any builds a rule that accepts any present value, optionally gated by a
// custom check.
func Any(key string, opts ...AnyOpt) fieldset.Rule {
	var opt AnyOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return fieldset.NewRule(key, func(key string, value any, data map[string]any) fieldset.Result {
		if opt.Check != nil {
			if err := opt.Check(value, data); err != nil {
				return fieldset.ForInvalidValue(key, value, err.Error())
			}
		}
		return fieldset.ForValidValue(key, value)
	}, fieldset.RuleOpt{Required: opt.Required, Default: opt.Default})
}

func invalidType(key string, value any, want string) fieldset.Result {
	msg := fmt.Sprintf("%s: expected %s, got %T", i18n.T("invalid_type", nil), want, value)
	return fieldset.ForInvalidValue(key, value, msg)
}
