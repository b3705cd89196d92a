package sluice_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sluicedb/sluice"
)

func TestFromEmptyEqualsDefault(t *testing.T) {
	def, err := sluice.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	got, err := sluice.From(sluice.Tree{})
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	if !reflect.DeepEqual(got, def) {
		t.Error("From({}) differs from Default()")
	}
}

func TestCreateInMemorySQLite(t *testing.T) {
	c, err := sluice.Create(context.Background(), sluice.Tree{"dialect": "sqlite"}, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer c.Close()

	if err := c.Authenticate(context.Background()); err != nil {
		t.Errorf("Authenticate: %v", err)
	}
}

func TestCreateConfigurationError(t *testing.T) {
	_, err := sluice.Create(context.Background(), sluice.Tree{"logging": "yes"}, false)

	var facErr *sluice.FactoryError
	if !errors.As(err, &facErr) || facErr.Kind != sluice.KindConfiguration {
		t.Fatalf("got %v, want KindConfiguration", err)
	}

	var cfgErr *sluice.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != sluice.KindUserConfigInvalid {
		t.Errorf("cause = %v, want UserConfigInvalid", err)
	}
}
