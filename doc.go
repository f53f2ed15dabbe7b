package fieldset

// Package fieldset provides:
//
// - Rule-per-field validation of map[string]any payloads (Rule/RuleSet)
// - An aggregated, frozen report of per-field outcomes (Result/ResultSet)
// - Missing-value and default-value resolution with an injectable resolver
// - Declarative YAML rule manifests and a JSON payload/report codec
//
// Design policy:
// - Keep only public APIs in the root package; put helper rule builders under rules/.
// - Place codecs under codec/, manifest loading under manifest/, and the CLI under cmd/fieldset.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rs, err := fieldset.NewRuleSet(
//		rules.String("email", rules.StringOpt{Required: true, Pattern: "@"}),
//		rules.Int("age", rules.IntOpt{Default: 18}),
//	)
//	report := rs.Validate(payload)
//	if !report.Valid() {
//		msgs := report.Messages()
//		...
//	}
