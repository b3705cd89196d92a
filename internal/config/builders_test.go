package config

import (
	"errors"
	"testing"
)

func TestSyncFrom(t *testing.T) {
	def, err := DefaultSync()
	if err != nil {
		t.Fatalf("DefaultSync: %v", err)
	}
	if def.Force() || def.Alter() {
		t.Errorf("defaults = %+v, want both false", def)
	}

	got, err := SyncFrom(Tree{})
	if err != nil {
		t.Fatalf("SyncFrom({}): %v", err)
	}
	if got != def {
		t.Errorf("SyncFrom({}) = %+v, want default %+v", got, def)
	}

	got, err = SyncFrom(decodeTree(t, `{"force": true}`))
	if err != nil {
		t.Fatalf("SyncFrom: %v", err)
	}
	if !got.Force() || got.Alter() {
		t.Errorf("got %+v, want force=true alter=false", got)
	}
}

func TestSyncFromRejectsStringBool(t *testing.T) {
	_, err := SyncFrom(decodeTree(t, `{"force": "true"}`))

	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Kind != KindUserConfigInvalid || cfgErr.Component != "sync" {
		t.Fatalf("got %v, want UserConfigInvalid for sync", err)
	}
}

func TestTransactionFrom(t *testing.T) {
	def, err := DefaultTransaction()
	if err != nil {
		t.Fatalf("DefaultTransaction: %v", err)
	}
	if def.Type() != TransactionDeferred || def.IsolationLevel() != IsolationRepeatableRead {
		t.Errorf("defaults = %+v", def)
	}

	got, err := TransactionFrom(decodeTree(t, `{"type": "IMMEDIATE"}`))
	if err != nil {
		t.Fatalf("TransactionFrom: %v", err)
	}
	if got.Type() != TransactionImmediate {
		t.Errorf("type = %q, want IMMEDIATE", got.Type())
	}
	if got.IsolationLevel() != def.IsolationLevel() {
		t.Errorf("isolation level = %q, want default %q", got.IsolationLevel(), def.IsolationLevel())
	}
}

func TestTransactionFromKeepsUnknownValues(t *testing.T) {
	// Enum values are documented, not enforced; unknown strings pass through.
	got, err := TransactionFrom(decodeTree(t, `{"type": "SOMETHING_ELSE"}`))
	if err != nil {
		t.Fatalf("TransactionFrom: %v", err)
	}
	if got.Type() != "SOMETHING_ELSE" {
		t.Errorf("type = %q, want passthrough", got.Type())
	}
}

func TestRetryFrom(t *testing.T) {
	def, err := DefaultRetry()
	if err != nil {
		t.Fatalf("DefaultRetry: %v", err)
	}
	if def.Max() != 5 {
		t.Errorf("default max = %d, want 5", def.Max())
	}

	got, err := RetryFrom(decodeTree(t, `{"max": 3}`))
	if err != nil {
		t.Fatalf("RetryFrom: %v", err)
	}
	if got.Max() != 3 {
		t.Errorf("max = %d, want 3", got.Max())
	}

	if _, err := RetryFrom(decodeTree(t, `{"max": "3"}`)); err == nil {
		t.Error("string retry count accepted")
	}
}
