package validation

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustObject(t *testing.T, body string) Object {
	t.Helper()
	obj, msg, ok := DecodeObject(json.RawMessage(body))
	if !ok {
		t.Fatalf("decode object: %s", msg)
	}
	return obj
}

func TestDecodeObject_RejectsNonObjects(t *testing.T) {
	cases := map[string]string{
		`[1,2]`: "Invalid data. Expected a dictionary, but got list.",
		`"rex"`: "Invalid data. Expected a dictionary, but got str.",
		`3`:     "Invalid data. Expected a dictionary, but got int.",
		`null`:  "Invalid data. Expected a dictionary, but got null.",
	}
	for body, want := range cases {
		_, msg, ok := DecodeObject(json.RawMessage(body))
		if ok {
			t.Fatalf("expected %s to be rejected", body)
		}
		if msg != want {
			t.Fatalf("body %s: got %q want %q", body, msg, want)
		}
	}
}

func TestString(t *testing.T) {
	obj := mustObject(t, `{"a":"  Rex  ","b":"","c":42,"d":true,"e":null,"f":"abcdef"}`)
	errs := Errors{}

	if v, ok := obj.String("a", true, 10, errs); !ok || v != "Rex" {
		t.Fatalf("expected trimmed Rex, got %q ok=%v", v, ok)
	}
	if v, ok := obj.String("c", true, 10, errs); !ok || v != "42" {
		t.Fatalf("numbers are accepted as text, got %q ok=%v", v, ok)
	}
	obj.String("b", true, 10, errs)
	obj.String("d", true, 10, errs)
	obj.String("e", true, 10, errs)
	obj.String("f", true, 5, errs)
	obj.String("missing", true, 10, errs)
	obj.String("optional", false, 10, errs)

	want := Errors{
		"b":       []string{MsgBlank},
		"d":       []string{MsgInvalidString},
		"e":       []string{MsgNull},
		"f":       []string{"Ensure this field has no more than 5 characters."},
		"missing": []string{MsgRequired},
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestString_CountsCharactersNotBytes(t *testing.T) {
	obj := mustObject(t, `{"name":"ñandú"}`)
	errs := Errors{}
	if _, ok := obj.String("name", true, 5, errs); !ok {
		t.Fatalf("5 runes must fit max 5, errs=%v", errs)
	}
}

func TestInt(t *testing.T) {
	obj := mustObject(t, `{"a":3,"b":"7","c":4.0,"d":4.5,"e":"x","f":[1]}`)
	errs := Errors{}

	for key, want := range map[string]int{"a": 3, "b": 7, "c": 4} {
		got, ok := obj.Int(key, true, errs)
		if !ok || got != want {
			t.Fatalf("Int(%s) = %d ok=%v, want %d", key, got, ok, want)
		}
	}
	for _, key := range []string{"d", "e", "f"} {
		if _, ok := obj.Int(key, true, errs); ok {
			t.Fatalf("Int(%s) should fail", key)
		}
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
}

func TestFloat(t *testing.T) {
	obj := mustObject(t, `{"a":12.5,"b":"3.25","c":7,"d":"heavy","e":{}}`)
	errs := Errors{}

	for key, want := range map[string]float64{"a": 12.5, "b": 3.25, "c": 7} {
		got, ok := obj.Float(key, true, errs)
		if !ok || got != want {
			t.Fatalf("Float(%s) = %v ok=%v, want %v", key, got, ok, want)
		}
	}
	obj.Float("d", true, errs)
	obj.Float("e", true, errs)
	if diff := cmp.Diff(Errors{"d": []string{MsgInvalidNumber}, "e": []string{MsgInvalidNumber}}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestChoice(t *testing.T) {
	obj := mustObject(t, `{"sex":"Male","bad":"male"}`)
	errs := Errors{}
	choices := []string{"Male", "Female", "Not Informed"}

	if v, ok := obj.Choice("sex", true, choices, errs); !ok || v != "Male" {
		t.Fatalf("expected Male, got %q", v)
	}
	obj.Choice("bad", true, choices, errs)
	if diff := cmp.Diff(Errors{"bad": []string{`"male" is not a valid choice.`}}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedAndList(t *testing.T) {
	obj := mustObject(t, `{"group":"Canis","traits":{"name":"x"},"ok":[{"a":1}]}`)
	errs := Errors{}

	if _, ok := obj.Nested("group", true, errs); ok {
		t.Fatalf("string is not a nested object")
	}
	if _, ok := obj.List("traits", true, errs); ok {
		t.Fatalf("object is not a list")
	}
	items, ok := obj.List("ok", true, errs)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one item, got %d ok=%v", len(items), ok)
	}

	want := Errors{
		"group":  Errors{NonFieldErrors: []string{"Invalid data. Expected a dictionary, but got str."}},
		"traits": Errors{NonFieldErrors: []string{`Expected a list of items but got type "dict".`}},
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_Err(t *testing.T) {
	if (Errors{}).Err() != nil {
		t.Fatalf("empty errors must be nil")
	}
	err := Errors{"name": []string{MsgRequired}, "age": []string{MsgRequired}}.Err()
	if err == nil || err.Error() != "validation failed: age, name" {
		t.Fatalf("unexpected error: %v", err)
	}
}
