package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("missing_value", nil); msg != "Missing required value" {
		t.Fatalf("expected the canonical missing-value message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("missing_value", nil); msg == "Missing required value" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo for unknown code, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestTranslator_Replace(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("missing_value", nil); msg != "X:missing_value" {
		t.Fatalf("expected custom translator output, got %q", msg)
	}
	SetTranslator(nil) // restore default
	if msg := T("missing_value", nil); msg != "Missing required value" {
		t.Fatalf("expected default restored, got %q", msg)
	}
}
