// Package config resolves raw, partially-specified configuration trees
// against the bundled defaults document, producing immutable, fully-typed
// configuration values.
//
// Each builder exposes two entry points with the same shape: DefaultX builds
// the value from the defaults document alone, and XFrom(raw) validates a raw
// tree field by field, substituting the default for every absent field.
// XFrom always computes DefaultX first, so every resolution also validates
// the bundled document; a defaults failure is a packaging defect and is
// reported as its own error kind.
//
// Validation is schema-driven and permissive: types and presence are
// checked, cross-field constraints are not.
package config
