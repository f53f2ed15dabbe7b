package fieldset

// MissingValueResolver produces the Result recorded when a required key is
// absent from the payload. It is the one designed extension point of the
// engine; the default implementation returns ForMissingValue(key).
type MissingValueResolver func(key string) Result

// RuleSetOpt carries construction options for a RuleSet.
type RuleSetOpt struct {
	// MissingValueResolver overrides missing-value reporting, e.g. to map
	// specific keys to custom messages. nil keeps the default.
	MissingValueResolver MissingValueResolver
}

// RuleSet is an ordered, unique-keyed collection of Rules that validates a
// payload into a frozen ResultSet. Build it once, then share it read-only;
// Add is not safe for concurrent use with Validate.
type RuleSet struct {
	order   []string
	rules   map[string]Rule
	missing MissingValueResolver
}

// NewRuleSet builds a RuleSet from the given rules, processed in supplied
// order. The first duplicate key fails construction with *DuplicateKeyError
// naming that key.
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	return NewRuleSetWithOpt(RuleSetOpt{}, rules...)
}

// NewRuleSetWithOpt is NewRuleSet with construction options.
func NewRuleSetWithOpt(opt RuleSetOpt, rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{
		rules:   make(map[string]Rule, len(rules)),
		missing: opt.MissingValueResolver,
	}
	if rs.missing == nil {
		rs.missing = func(key string) Result { return ForMissingValue(key) }
	}
	for _, r := range rules {
		if err := rs.Add(r); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// Add registers a rule under its key. A key already present fails with
// *DuplicateKeyError and leaves the set untouched.
func (s *RuleSet) Add(r Rule) error {
	key := r.Key()
	if _, ok := s.rules[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	s.rules[key] = r
	s.order = append(s.order, key)
	return nil
}

// RuleFor returns the rule registered for key, if any.
func (s *RuleSet) RuleFor(key string) (Rule, bool) {
	r, ok := s.rules[key]
	return r, ok
}

// Len returns the number of registered rules.
func (s *RuleSet) Len() int { return len(s.order) }

// Keys returns the rule keys in registration order.
func (s *RuleSet) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Validate applies every rule to data, in registration order, and returns a
// frozen ResultSet with exactly one Result per rule key:
//
//   - key present in data: the rule's Validate decides the outcome;
//   - key absent, rule required: the missing-value resolver decides;
//   - key absent, rule optional: a valid result carrying the rule's default
//     (nil when none was declared).
//
// Payload fields without a matching rule are ignored. data is never mutated
// and each call produces an independent ResultSet, so a RuleSet may be
// validated repeatedly and concurrently once built.
func (s *RuleSet) Validate(data map[string]any) *ResultSet {
	out := NewResultSet()
	for _, key := range s.order {
		rule := s.rules[key]
		if value, ok := data[key]; ok {
			_ = out.Add(rule.Validate(value, data))
			continue
		}
		if rule.Required() {
			_ = out.Add(s.missing(key))
			continue
		}
		_ = out.Add(ForValidValue(key, rule.Default()))
	}
	out.Freeze()
	return out
}
