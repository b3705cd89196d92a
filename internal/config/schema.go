package config

import (
	"database/sql"
	"encoding/json"
	"math"
)

// Tree is a decoded configuration document: string-keyed maps as produced by
// encoding/json, yaml.v3, or viper. Raw user configuration and the bundled
// defaults document both take this shape.
type Tree map[string]any

// kindName normalizes a runtime value to the schema's type vocabulary for
// error messages.
func kindName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, float64, json.Number:
		return "number"
	case Tree, map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}

// toInt reports the value as an int when it carries integer semantics.
// JSON decoding yields json.Number (or float64); YAML yields int. Fractional
// values and strings are rejected.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// toObject reports the value as a Tree when it is object-shaped.
func toObject(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	}
	return nil, false
}

// requireField returns the named field, failing with a MissingField error
// when the key is absent or the value is null.
func requireField(obj Tree, name string) (any, error) {
	v, ok := obj[name]
	if !ok || v == nil {
		return nil, missingField(name)
	}
	return v, nil
}

// optionalField returns the named field, or fallback when the key is absent.
// A present null is returned as-is: whether null is acceptable is decided by
// the type assertion composed after this call.
func optionalField(obj Tree, name string, fallback any) any {
	v, ok := obj[name]
	if !ok {
		return fallback
	}
	return v
}

// --- required fields (defaults-document validation) ---

func requireInt(obj Tree, name string) (int, error) {
	v, err := requireField(obj, name)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(v)
	if !ok {
		return 0, typeMismatch(name, "integer", kindName(v))
	}
	return n, nil
}

func requireBool(obj Tree, name string) (bool, error) {
	v, err := requireField(obj, name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeMismatch(name, "boolean", kindName(v))
	}
	return b, nil
}

func requireString(obj Tree, name string) (string, error) {
	v, err := requireField(obj, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(name, "string", kindName(v))
	}
	return s, nil
}

func requireObject(obj Tree, name string) (Tree, error) {
	v, err := requireField(obj, name)
	if err != nil {
		return nil, err
	}
	m, ok := toObject(v)
	if !ok {
		return nil, typeMismatch(name, "object", kindName(v))
	}
	return m, nil
}

// requireNullableString is requireField for a string field that may be null:
// the key must exist, but an explicit null yields an invalid NullString.
func requireNullableString(obj Tree, name string) (sql.NullString, error) {
	v, ok := obj[name]
	if !ok {
		return sql.NullString{}, missingField(name)
	}
	if v == nil {
		return sql.NullString{}, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return sql.NullString{}, typeMismatch(name, "string", kindName(v))
	}
	return sql.NullString{String: s, Valid: true}, nil
}

// requireNullableObject is requireField for an object field that may be null.
func requireNullableObject(obj Tree, name string) (Tree, error) {
	v, ok := obj[name]
	if !ok {
		return nil, missingField(name)
	}
	if v == nil {
		return nil, nil
	}
	m, isObj := toObject(v)
	if !isObj {
		return nil, typeMismatch(name, "object", kindName(v))
	}
	return m, nil
}

// --- optional fields (user-configuration validation) ---
//
// Fallback applies only when the key is absent. A present null fails the
// type assertion for non-nullable fields and resolves to null for nullable
// ones.

func optionalInt(obj Tree, name string, fallback int) (int, error) {
	v, ok := obj[name]
	if !ok {
		return fallback, nil
	}
	n, isInt := toInt(v)
	if !isInt {
		return 0, typeMismatch(name, "integer", kindName(v))
	}
	return n, nil
}

func optionalBool(obj Tree, name string, fallback bool) (bool, error) {
	v, ok := obj[name]
	if !ok {
		return fallback, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, typeMismatch(name, "boolean", kindName(v))
	}
	return b, nil
}

func optionalString(obj Tree, name string, fallback string) (string, error) {
	v, ok := obj[name]
	if !ok {
		return fallback, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", typeMismatch(name, "string", kindName(v))
	}
	return s, nil
}

func optionalObject(obj Tree, name string, fallback Tree) (Tree, error) {
	v, ok := obj[name]
	if !ok {
		return fallback, nil
	}
	m, isObj := toObject(v)
	if !isObj {
		return nil, typeMismatch(name, "object", kindName(v))
	}
	return m, nil
}

func optionalNullableString(obj Tree, name string, fallback sql.NullString) (sql.NullString, error) {
	v, ok := obj[name]
	if !ok {
		return fallback, nil
	}
	if v == nil {
		return sql.NullString{}, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return sql.NullString{}, typeMismatch(name, "string", kindName(v))
	}
	return sql.NullString{String: s, Valid: true}, nil
}

func optionalNullableObject(obj Tree, name string, fallback Tree) (Tree, error) {
	v, ok := obj[name]
	if !ok {
		return fallback, nil
	}
	if v == nil {
		return nil, nil
	}
	m, isObj := toObject(v)
	if !isObj {
		return nil, typeMismatch(name, "object", kindName(v))
	}
	return m, nil
}
