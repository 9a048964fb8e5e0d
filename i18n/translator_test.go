package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"actual": `"x"`, "expected": "number"}
	// default is en
	if msg := T("invalid_type", data); msg != `cannot decode "x", should be number` {
		t.Fatalf("unexpected en message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", data); msg == `cannot decode "x", should be number` || msg == "invalid_type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeAndLanguage(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
	SetLanguage("xx")
	if msg := T("parse_error", nil); msg != "parse error" {
		t.Fatalf("unknown language should fall back to en, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("invalid_type", nil); msg != "X:invalid_type" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}

func TestExpand_LeavesUnknownPlaceholders(t *testing.T) {
	if got := Expand("{a} and {b}", map[string]string{"a": "1"}); got != "1 and {b}" {
		t.Fatalf("got %q", got)
	}
}
