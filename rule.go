package fieldset

// Rule describes how to validate one named field. Implementations must be
// immutable and side-effect free; a Rule may be shared across RuleSets.
type Rule interface {
	// Key returns the stable, non-empty field name this rule governs.
	Key() string
	// Required reports whether absence of the key in the payload is itself a
	// validation failure.
	Required() bool
	// Default returns the value substituted when an optional key is absent.
	// nil is a legitimate default.
	Default() any
	// Validate turns a present value into a Result. data is the full payload,
	// for cross-field checks. Failures are reported through the returned
	// Result, never through panics or out-of-band errors.
	Validate(value any, data map[string]any) Result
}

// ValidateFunc adapts a closure to the Validate operation of a Rule.
type ValidateFunc func(key string, value any, data map[string]any) Result

// RuleOpt carries the declarative half of a rule built with NewRule.
type RuleOpt struct {
	// Required marks absence of the key as a missing-value failure.
	Required bool
	// Default is the value substituted when an optional key is absent.
	Default any
}

// NewRule builds a Rule from a key, a validate closure, and options (last
// wins). A nil fn accepts any present value as valid.
func NewRule(key string, fn ValidateFunc, opts ...RuleOpt) Rule {
	var opt RuleOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &funcRule{key: key, fn: fn, opt: opt}
}

type funcRule struct {
	key string
	fn  ValidateFunc
	opt RuleOpt
}

func (r *funcRule) Key() string    { return r.key }
func (r *funcRule) Required() bool { return r.opt.Required }
func (r *funcRule) Default() any   { return r.opt.Default }

func (r *funcRule) Validate(value any, data map[string]any) Result {
	if r.fn == nil {
		return ForValidValue(r.key, value)
	}
	return r.fn(r.key, value, data)
}
