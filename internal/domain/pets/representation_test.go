package pets

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"

	"github.com/google/go-cmp/cmp"
)

func decodeBody(t *testing.T, body string) (CreateInput, error) {
	t.Helper()
	obj, err := readObject(strings.NewReader(body))
	if err != nil {
		return CreateInput{}, err
	}
	return decodeCreate(obj)
}

func TestDecodeCreate_Example(t *testing.T) {
	in, err := decodeBody(t, `{"name":"Rex","age":3,"weight":12.5,"group":{"scientific_name":"Canis lupus"},"traits":[{"name":"Loyal"}]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := CreateInput{
		Name:   "Rex",
		Age:    3,
		Weight: 12.5,
		Sex:    SexNotInformed,
		Group:  groups.Input{ScientificName: "Canis lupus"},
		Traits: []traits.Input{{Name: "Loyal"}},
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("decoded input mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCreate_ReadOnlyFieldsIgnored(t *testing.T) {
	in, err := decodeBody(t, `{"id":99,"name":"Rex","age":"3","weight":"12.5","sex":"Female",
		"group":{"id":7,"scientific_name":"Canis lupus","created_at":"2020-01-01T00:00:00Z"},
		"traits":[]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if in.Age != 3 || in.Weight != 12.5 || in.Sex != SexFemale || len(in.Traits) != 0 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestDecodeCreate_FieldErrors(t *testing.T) {
	_, err := decodeBody(t, `{"name":"","age":1.5,"weight":"heavy","sex":null,"group":"Canis","traits":{"name":"x"}}`)
	fields, ok := asValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, _ := json.Marshal(fields)
	want := `{"age":["A valid integer is required."],` +
		`"group":{"non_field_errors":["Invalid data. Expected a dictionary, but got str."]},` +
		`"name":["This field may not be blank."],` +
		`"sex":["This field may not be null."],` +
		`"traits":{"non_field_errors":["Expected a list of items but got type \"dict\"."]},` +
		`"weight":["A valid number is required."]}`
	if string(got) != want {
		t.Fatalf("unexpected errors:\n got %s\nwant %s", got, want)
	}
}

func TestReadObject_ParseErrors(t *testing.T) {
	_, err := readObject(strings.NewReader(`{"name":`))
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T %v", err, err)
	}
	if !strings.HasPrefix(perr.Error(), "JSON parse error - ") {
		t.Fatalf("unexpected message %q", perr.Error())
	}

	obj, err := readObject(strings.NewReader("  "))
	if err != nil || len(obj) != 0 {
		t.Fatalf("empty body must decode as empty object, got %v %v", obj, err)
	}

	_, err = readObject(strings.NewReader(`"pet"`))
	fields, ok := asValidationError(err)
	if !ok {
		t.Fatalf("expected validation error for string body, got %v", err)
	}
	if diff := cmp.Diff([]string{"Invalid data. Expected a dictionary, but got str."}, fields["non_field_errors"]); diff != "" {
		t.Fatalf("non_field_errors mismatch:\n%s", diff)
	}
}

func TestDecodeUpdate_Partial(t *testing.T) {
	obj, err := readObject(strings.NewReader(`{"weight":13}`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	in, err := decodeUpdate(obj)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if in.Weight == nil || *in.Weight != 13 {
		t.Fatalf("expected weight 13, got %+v", in.Weight)
	}
	if in.Name != nil || in.Age != nil || in.Sex != nil || in.Group != nil || in.Traits != nil {
		t.Fatalf("absent fields must stay nil: %+v", in)
	}

	// el grupo anidado sigue necesitando su clave
	obj, _ = readObject(strings.NewReader(`{"group":{}}`))
	_, err = decodeUpdate(obj)
	fields, ok := asValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := fields["group"]; !ok {
		t.Fatalf("expected group error, got %v", fields)
	}
}

// Una mascota codificada y vuelta a decodificar conserva escalares y el set de traits.
func TestRepresentation_RoundTrip(t *testing.T) {
	p := Pet{
		ID:     5,
		Name:   "Luna",
		Age:    2,
		Weight: 4.25,
		Sex:    SexFemale,
		Group:  groups.Group{ID: 1, ScientificName: "Felis catus", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Traits: []traits.Trait{
			{ID: 2, Name: "Playful", CreatedAt: time.Now()},
			{ID: 1, Name: "Fluffy", CreatedAt: time.Now()},
		},
	}

	body, err := json.Marshal(toPetResponse(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	in, err := decodeBody(t, string(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if in.Name != p.Name || in.Age != p.Age || in.Weight != p.Weight || in.Sex != p.Sex {
		t.Fatalf("scalars changed: %+v", in)
	}
	if in.Group.ScientificName != p.Group.ScientificName {
		t.Fatalf("group changed: %+v", in.Group)
	}

	names := func(xs []string) []string { sort.Strings(xs); return xs }
	var gotNames []string
	for _, ti := range in.Traits {
		gotNames = append(gotNames, ti.Name)
	}
	if diff := cmp.Diff(names([]string{"Playful", "Fluffy"}), names(gotNames)); diff != "" {
		t.Fatalf("trait set mismatch:\n%s", diff)
	}
}
