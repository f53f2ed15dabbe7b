package codec_test

import (
	"encoding/json"
	"strings"
	"testing"

	fieldset "github.com/reoring/fieldset"
	"github.com/reoring/fieldset/codec"
)

func TestDecodePayload_NumbersKeepPrecision(t *testing.T) {
	payload, err := codec.DecodePayload([]byte(`{"age": 30, "price": 9.99, "name": "gopher"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, ok := payload["age"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number for age, got %T", payload["age"])
	}
	if v, err := n.Int64(); err != nil || v != 30 {
		t.Fatalf("unexpected age %v %v", v, err)
	}
	if payload["name"] != "gopher" {
		t.Fatalf("unexpected name %v", payload["name"])
	}
}

func TestDecodePayload_NonObjectFails(t *testing.T) {
	if _, err := codec.DecodePayload([]byte(`[1,2,3]`)); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
	if _, err := codec.DecodePayload([]byte(`{broken`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestEncodeReport(t *testing.T) {
	rs := fieldset.NewResultSet(
		fieldset.ForValidValue("name", "gopher"),
		fieldset.ForMissingValue("email"),
	)
	rs.Freeze()

	out, err := codec.EncodeReport(rs)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded struct {
		Valid   bool `json:"valid"`
		Results []struct {
			Key     string `json:"key"`
			Valid   bool   `json:"valid"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"results"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded.Valid {
		t.Fatalf("expected invalid report")
	}
	if len(decoded.Results) != 2 || decoded.Results[0].Key != "name" || decoded.Results[1].Key != "email" {
		t.Fatalf("unexpected entries: %+v", decoded.Results)
	}
	if decoded.Results[1].Code != fieldset.CodeMissing || decoded.Results[1].Message != "Missing required value" {
		t.Fatalf("unexpected missing entry: %+v", decoded.Results[1])
	}

	indented, err := codec.EncodeReportIndent(rs)
	if err != nil {
		t.Fatalf("encode indent: %v", err)
	}
	if !strings.Contains(string(indented), "\n") {
		t.Fatalf("expected indented output")
	}
}
