package fieldset_test

import (
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	fieldset "github.com/reoring/fieldset"
)

func TestResultSet_OrderAndQueries(t *testing.T) {
	rs := fieldset.NewResultSet(
		fieldset.ForValidValue("a", 1),
		fieldset.ForInvalidValue("b", "x", "nope"),
		fieldset.ForMissingValue("c"),
	)
	if rs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", rs.Len())
	}
	if got := rs.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected key order: %v", got)
	}
	if rs.Valid() {
		t.Fatalf("set with invalid entries must not be valid")
	}
	wantValues := map[string]any{"a": 1, "b": "x", "c": nil}
	if got := rs.Values(); !reflect.DeepEqual(got, wantValues) {
		t.Fatalf("unexpected values: %v", got)
	}
	wantMessages := map[string]string{"b": "nope", "c": "Missing required value"}
	if got := rs.Messages(); !reflect.DeepEqual(got, wantMessages) {
		t.Fatalf("unexpected messages: %v", got)
	}
	if r, ok := rs.ResultFor("b"); !ok || r.Message() != "nope" {
		t.Fatalf("unexpected lookup: %v %v", r, ok)
	}
	if _, ok := rs.ResultFor("zzz"); ok {
		t.Fatalf("lookup of unknown key must report absence")
	}
}

func TestResultSet_EmptyIsValid(t *testing.T) {
	rs := fieldset.NewResultSet()
	if !rs.Valid() || rs.Len() != 0 {
		t.Fatalf("empty set must be valid and empty")
	}
}

func TestResultSet_FreezeRejectsAdd(t *testing.T) {
	rs := fieldset.NewResultSet(fieldset.ForValidValue("a", 1))
	rs.Freeze()
	rs.Freeze() // idempotent
	if !rs.Frozen() {
		t.Fatalf("expected frozen set")
	}
	err := rs.Add(fieldset.ForValidValue("b", 2))
	if err == nil {
		t.Fatalf("expected error adding to frozen set")
	}
	fe, ok := fieldset.AsFrozen(err)
	if !ok || fe.Key != "b" {
		t.Fatalf("expected FrozenError for key b, got %v", err)
	}
	if rs.Len() != 1 {
		t.Fatalf("failed add must not change the set, got %d entries", rs.Len())
	}
}

func TestResultSet_OverwriteKeepsPosition(t *testing.T) {
	rs := fieldset.NewResultSet(
		fieldset.ForValidValue("a", 1),
		fieldset.ForValidValue("b", 2),
	)
	if err := rs.Add(fieldset.ForInvalidValue("a", 9, "later wins")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := rs.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("overwrite must keep the original position, got %v", got)
	}
	if r, _ := rs.ResultFor("a"); r.Valid() || r.Value() != 9 {
		t.Fatalf("expected overwritten result, got %+v", r)
	}
	if rs.Len() != 2 {
		t.Fatalf("overwrite must not grow the set, got %d", rs.Len())
	}
}

func TestResultSet_MarshalJSONOrdered(t *testing.T) {
	rs := fieldset.NewResultSet(
		fieldset.ForValidValue("z", 1),
		fieldset.ForMissingValue("a"),
	)
	rs.Freeze()
	out, err := json.Marshal(rs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"valid":false`) {
		t.Fatalf("expected invalid report, got %s", s)
	}
	// registration order, not lexical order
	if zi, ai := strings.Index(s, `"z"`), strings.Index(s, `"a"`); zi < 0 || ai < 0 || zi > ai {
		t.Fatalf("expected z before a in %s", s)
	}
}
