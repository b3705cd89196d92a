package config

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// decodeTree parses a JSON document the way raw user configuration arrives,
// with numbers kept as json.Number.
func decodeTree(t *testing.T, src string) Tree {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	var tree Tree
	if err := dec.Decode(&tree); err != nil {
		t.Fatalf("decode %q: %v", src, err)
	}
	return tree
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
		ok   bool
	}{
		{"int", 42, 42, true},
		{"int64", int64(7), 7, true},
		{"integral float", float64(10000), 10000, true},
		{"fractional float", 10.5, 0, false},
		{"json number", json.Number("5"), 5, true},
		{"fractional json number", json.Number("5.5"), 0, false},
		{"string digits", "5", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toInt(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("toInt(%v) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRequireField(t *testing.T) {
	obj := decodeTree(t, `{"present": "x", "null": null}`)

	if _, err := requireField(obj, "present"); err != nil {
		t.Errorf("present field: unexpected error %v", err)
	}

	for _, name := range []string{"absent", "null"} {
		_, err := requireField(obj, name)
		var cfgErr *Error
		if !errors.As(err, &cfgErr) || cfgErr.Kind != KindMissingField {
			t.Errorf("field %q: got %v, want MissingField", name, err)
		}
		if cfgErr != nil && cfgErr.Field != name {
			t.Errorf("field %q: error names field %q", name, cfgErr.Field)
		}
	}
}

func TestOptionalFieldFallsBackOnlyWhenAbsent(t *testing.T) {
	obj := decodeTree(t, `{"set": "value", "null": null}`)

	if got := optionalField(obj, "set", "fallback"); got != "value" {
		t.Errorf("set: got %v", got)
	}
	if got := optionalField(obj, "absent", "fallback"); got != "fallback" {
		t.Errorf("absent: got %v", got)
	}
	// A present null is not replaced by the fallback; the type assertion
	// composed after this call decides whether null is acceptable.
	if got := optionalField(obj, "null", "fallback"); got != nil {
		t.Errorf("null: got %v, want nil", got)
	}
}

func TestTypedAssertionsRejectWrongKinds(t *testing.T) {
	obj := decodeTree(t, `{"n": 5, "s": "five", "b": true, "o": {"k": 1}}`)

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"int from string", secondErr(optionalInt(obj, "s", 0)), "integer"},
		{"bool from number", secondErr(optionalBool(obj, "n", false)), "boolean"},
		{"string from bool", secondErr(optionalString(obj, "b", "")), "string"},
		{"object from string", secondErr(optionalObject(obj, "s", nil)), "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfgErr *Error
			if !errors.As(tt.err, &cfgErr) || cfgErr.Kind != KindTypeMismatch {
				t.Fatalf("got %v, want TypeMismatch", tt.err)
			}
			if cfgErr.Expected != tt.expected {
				t.Errorf("expected kind %q, want %q", cfgErr.Expected, tt.expected)
			}
		})
	}
}

func secondErr[T any](_ T, err error) error { return err }

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestNullableFields(t *testing.T) {
	obj := decodeTree(t, `{"null": null, "set": "x", "num": 5}`)

	ns, err := optionalNullableString(obj, "null", toNullString("fallback"))
	if err != nil || ns.Valid {
		t.Errorf("explicit null: got (%v, %v), want invalid NullString", ns, err)
	}

	ns, err = optionalNullableString(obj, "absent", toNullString("fallback"))
	if err != nil || !ns.Valid || ns.String != "fallback" {
		t.Errorf("absent: got (%v, %v), want fallback", ns, err)
	}

	ns, err = optionalNullableString(obj, "set", toNullString("fallback"))
	if err != nil || !ns.Valid || ns.String != "x" {
		t.Errorf("set: got (%v, %v), want x", ns, err)
	}

	if _, err := optionalNullableString(obj, "num", toNullString("")); err == nil {
		t.Error("number accepted as nullable string")
	}

	if _, err := requireNullableString(obj, "null"); err != nil {
		t.Errorf("required nullable null: unexpected error %v", err)
	}
	if _, err := requireNullableString(obj, "absent"); err == nil {
		t.Error("required nullable absent: expected MissingField")
	}
}
