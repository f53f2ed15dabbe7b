// Package manifest compiles declarative YAML rule manifests into a
// fieldset.RuleSet. A manifest lists one entry per field:
//
//	rules:
//	  - key: email
//	    type: string
//	    required: true
//	    pattern: "@"
//	  - key: age
//	    type: int
//	    default: 18
//	    min: 0
//	  - key: country
//	    type: string
//	    oneOf: [de, fr, jp]
//	  - key: total
//	    check: totalMatchesItems
//
// Entries with a check name resolve against the caller-supplied check
// registry, which is how cross-field validation enters a manifest.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	fieldset "github.com/reoring/fieldset"
	"github.com/reoring/fieldset/rules"
)

// Entry is one field declaration in a manifest.
type Entry struct {
	Key      string   `yaml:"key"`
	Type     string   `yaml:"type"` // string, int, float, bool, any; empty means any
	Required bool     `yaml:"required"`
	Default  any      `yaml:"default"`
	MinLen   int      `yaml:"minLen"`
	MaxLen   int      `yaml:"maxLen"`
	Pattern  string   `yaml:"pattern"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
	OneOf    []any    `yaml:"oneOf"`
	Check    string   `yaml:"check"`
}

// Document is the top-level manifest shape.
type Document struct {
	Rules []Entry `yaml:"rules"`
}

// Options carries compilation options.
type Options struct {
	// Checks resolves the names referenced by Entry.Check.
	Checks map[string]rules.CheckFunc
}

// Load parses a YAML manifest and compiles it into a RuleSet. Unknown YAML
// fields, unknown types, unresolved check names, bad patterns, and duplicate
// keys all fail loading.
func Load(data []byte, opts ...Options) (*fieldset.RuleSet, error) {
	return LoadReader(bytes.NewReader(data), opts...)
}

// LoadReader is Load over an io.Reader.
func LoadReader(r io.Reader, opts ...Options) (*fieldset.RuleSet, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			doc = Document{}
		} else {
			return nil, fmt.Errorf("manifest: decode: %w", err)
		}
	}

	built := make([]fieldset.Rule, 0, len(doc.Rules))
	for i, e := range doc.Rules {
		rule, err := compile(e, opt)
		if err != nil {
			return nil, fmt.Errorf("manifest: rule %d (%q): %w", i, e.Key, err)
		}
		built = append(built, rule)
	}
	return fieldset.NewRuleSet(built...)
}

func compile(e Entry, opt Options) (fieldset.Rule, error) {
	if e.Key == "" {
		return nil, errors.New("missing key")
	}
	if e.Pattern != "" {
		if _, err := regexp.Compile(e.Pattern); err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
	}

	var check rules.CheckFunc
	if e.Check != "" {
		fn, ok := opt.Checks[e.Check]
		if !ok {
			return nil, fmt.Errorf("unknown check %q", e.Check)
		}
		check = fn
	}

	var r fieldset.Rule
	switch e.Type {
	case "string":
		oneOf, err := stringSlice(e.OneOf)
		if err != nil {
			return nil, err
		}
		r = rules.String(e.Key, rules.StringOpt{
			Required: e.Required,
			Default:  e.Default,
			MinLen:   e.MinLen,
			MaxLen:   e.MaxLen,
			Pattern:  e.Pattern,
			OneOf:    oneOf,
		})
	case "int":
		oneOf, err := int64Slice(e.OneOf)
		if err != nil {
			return nil, err
		}
		r = rules.Int(e.Key, rules.IntOpt{
			Required: e.Required,
			Default:  e.Default,
			Min:      intBound(e.Min),
			Max:      intBound(e.Max),
			OneOf:    oneOf,
		})
	case "float":
		r = rules.Float(e.Key, rules.FloatOpt{
			Required: e.Required,
			Default:  e.Default,
			Min:      e.Min,
			Max:      e.Max,
		})
	case "bool":
		r = rules.Bool(e.Key, rules.BoolOpt{Required: e.Required, Default: e.Default})
	case "any", "":
		return rules.Any(e.Key, rules.AnyOpt{Required: e.Required, Default: e.Default, Check: check}), nil
	default:
		return nil, fmt.Errorf("unknown type %q", e.Type)
	}

	if check != nil {
		r = withCheck(r, check)
	}
	return r, nil
}

// withCheck layers a named check on top of a typed rule; the check runs only
// when the typed constraints pass.
func withCheck(base fieldset.Rule, check rules.CheckFunc) fieldset.Rule {
	fn := func(key string, value any, data map[string]any) fieldset.Result {
		res := base.Validate(value, data)
		if !res.Valid() {
			return res
		}
		if err := check(value, data); err != nil {
			return fieldset.ForInvalidValue(key, value, err.Error())
		}
		return res
	}
	return fieldset.NewRule(base.Key(), fn, fieldset.RuleOpt{Required: base.Required(), Default: base.Default()})
}

func intBound(f *float64) *int64 {
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

func stringSlice(vals []any) ([]string, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("oneOf entry %v is not a string", v)
		}
		out = append(out, s)
	}
	return out, nil
}

func int64Slice(vals []any) ([]int64, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]int64, 0, len(vals))
	for _, v := range vals {
		switch n := v.(type) {
		case int:
			out = append(out, int64(n))
		case int64:
			out = append(out, n)
		case float64:
			out = append(out, int64(n))
		default:
			return nil, fmt.Errorf("oneOf entry %v is not an integer", v)
		}
	}
	return out, nil
}
