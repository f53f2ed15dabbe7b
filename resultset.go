package fieldset

import (
	json "github.com/goccy/go-json"
)

// ResultSet is the validation report: an insertion-ordered collection of
// Results keyed by field name. It accepts Add calls until Freeze, after
// which every mutation fails with *FrozenError. A ResultSet returned by
// RuleSet.Validate is always already frozen.
//
// Building a ResultSet is a single-writer affair; once frozen it is safe to
// share between readers.
type ResultSet struct {
	order   []string
	results map[string]Result
	frozen  bool
}

// NewResultSet returns an unfrozen ResultSet seeded with the given results.
// Seeding follows the same overwrite policy as Add.
func NewResultSet(results ...Result) *ResultSet {
	rs := &ResultSet{results: make(map[string]Result, len(results))}
	for _, r := range results {
		_ = rs.Add(r)
	}
	return rs
}

// Add inserts a result keyed by its field name. Adding a key that is already
// present overwrites the earlier result and keeps its original position; the
// engine never produces two results for one key, so this path only matters
// for hand-built sets. Returns *FrozenError once the set is frozen.
func (rs *ResultSet) Add(r Result) error {
	if rs.frozen {
		return &FrozenError{Key: r.Key()}
	}
	if _, ok := rs.results[r.Key()]; !ok {
		rs.order = append(rs.order, r.Key())
	}
	rs.results[r.Key()] = r
	return nil
}

// Freeze makes the set read-only. The transition is one-way and idempotent.
func (rs *ResultSet) Freeze() { rs.frozen = true }

// Frozen reports whether Freeze has been called.
func (rs *ResultSet) Frozen() bool { return rs.frozen }

// Len returns the number of results.
func (rs *ResultSet) Len() int { return len(rs.order) }

// Keys returns the field names in insertion order.
func (rs *ResultSet) Keys() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}

// Valid reports whether every contained result is valid. An empty set is
// valid.
func (rs *ResultSet) Valid() bool {
	for _, key := range rs.order {
		if !rs.results[key].Valid() {
			return false
		}
	}
	return true
}

// Values returns key->resolved value for every entry. Missing-value entries
// appear with a nil value, so the key space always matches the rule set.
// Iterate Keys() when insertion order matters.
func (rs *ResultSet) Values() map[string]any {
	out := make(map[string]any, len(rs.order))
	for _, key := range rs.order {
		out[key] = rs.results[key].Value()
	}
	return out
}

// Messages returns key->message restricted to entries that carry one, i.e.
// the missing and invalid outcomes. Iterate Keys() when insertion order
// matters.
func (rs *ResultSet) Messages() map[string]string {
	out := make(map[string]string, len(rs.order))
	for _, key := range rs.order {
		if msg := rs.results[key].Message(); msg != "" {
			out[key] = msg
		}
	}
	return out
}

// ResultFor returns the result recorded for key, if any.
func (rs *ResultSet) ResultFor(key string) (Result, bool) {
	r, ok := rs.results[key]
	return r, ok
}

// resultJSON is the wire shape of a single report entry.
type resultJSON struct {
	Key     string `json:"key"`
	Valid   bool   `json:"valid"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

// reportJSON is the wire shape of the whole report. Results are emitted as
// an array so insertion order survives serialization.
type reportJSON struct {
	Valid   bool         `json:"valid"`
	Results []resultJSON `json:"results"`
}

// MarshalJSON serializes the report deterministically in insertion order.
func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	rep := reportJSON{Valid: rs.Valid(), Results: make([]resultJSON, 0, len(rs.order))}
	for _, key := range rs.order {
		r := rs.results[key]
		rep.Results = append(rep.Results, resultJSON{
			Key:     r.Key(),
			Valid:   r.Valid(),
			Code:    r.Code(),
			Value:   r.Value(),
			Message: r.Message(),
		})
	}
	return json.Marshal(rep)
}
