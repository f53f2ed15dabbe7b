package codec

import (
	"fmt"

	json "github.com/goccy/go-json"

	fieldset "github.com/reoring/fieldset"
)

// EncodeReport serializes a validation report. Entries appear as an array in
// rule registration order, so output is deterministic.
func EncodeReport(rs *fieldset.ResultSet) ([]byte, error) {
	out, err := json.Marshal(rs)
	if err != nil {
		return nil, fmt.Errorf("codec: encode report: %w", err)
	}
	return out, nil
}

// EncodeReportIndent is EncodeReport with two-space indentation, for CLI and
// log output.
func EncodeReportIndent(rs *fieldset.ResultSet) ([]byte, error) {
	out, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode report: %w", err)
	}
	return out, nil
}
