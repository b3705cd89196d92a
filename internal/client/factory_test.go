package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sluicedb/sluice/internal/config"
)

func TestCreateSQLiteEndToEnd(t *testing.T) {
	raw := config.Tree{
		"dialect":  "sqlite",
		"database": filepath.Join(t.TempDir(), "app.db"),
	}

	c, err := Create(context.Background(), raw, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	if c.ID() == "" {
		t.Error("client has no id")
	}
	if c.Dialect() != "sqlite" {
		t.Errorf("dialect = %q", c.Dialect())
	}

	// The handle is genuinely connected.
	var one int
	if err := c.DB().Get(&one, "SELECT 1"); err != nil {
		t.Fatalf("query through client: %v", err)
	}
	if one != 1 {
		t.Errorf("SELECT 1 = %d", one)
	}
}

func TestCreateWithoutAuthenticate(t *testing.T) {
	// No MySQL server is running; construction must succeed anyway because
	// the handshake is skipped and the pool opens lazily.
	raw := config.Tree{
		"dialect": "mysql",
		"host":    "127.0.0.1",
		"port":    3306,
		"pool":    config.Tree{"max": 5},
	}

	c, err := Create(context.Background(), raw, false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	pool := c.Config().Pool()
	if pool.Max() != 5 {
		t.Errorf("pool.max = %d, want provided 5", pool.Max())
	}
	if pool.Min() != 0 || pool.Idle() != 10000 {
		t.Errorf("pool defaults not substituted: min=%d idle=%d", pool.Min(), pool.Idle())
	}
}

func TestCreateInvalidPortFailsBeforeConnecting(t *testing.T) {
	_, err := Create(context.Background(), config.Tree{"port": "not-a-number"}, true)

	var facErr *Error
	if !errors.As(err, &facErr) || facErr.Kind != KindConfiguration {
		t.Fatalf("got %v, want KindConfiguration", err)
	}

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) || cfgErr.Kind != config.KindUserConfigInvalid {
		t.Errorf("cause = %v, want UserConfigInvalid", facErr.Err)
	}
}

func TestCreateUnsupportedDialect(t *testing.T) {
	_, err := Create(context.Background(), config.Tree{"dialect": "dbase"}, false)

	var facErr *Error
	if !errors.As(err, &facErr) || facErr.Kind != KindConfiguration {
		t.Fatalf("got %v, want KindConfiguration", err)
	}
}

func TestCreateAuthenticateFailure(t *testing.T) {
	// Point sqlite at a file inside a directory that does not exist: the
	// pool opens, but the handshake cannot.
	raw := config.Tree{
		"dialect":  "sqlite",
		"database": filepath.Join(t.TempDir(), "missing", "sub", "app.db"),
	}

	_, err := Create(context.Background(), raw, true)

	var facErr *Error
	if !errors.As(err, &facErr) || facErr.Kind != KindAuthenticate {
		t.Fatalf("got %v, want KindAuthenticate", err)
	}
}

func TestClientOptionsReflectResolvedConfig(t *testing.T) {
	raw := config.Tree{
		"dialect":  "sqlite",
		"database": filepath.Join(t.TempDir(), "app.db"),
	}

	c, err := Create(context.Background(), raw, false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	opts := c.Options()
	if opts["dialect"] != "sqlite" {
		t.Errorf("options dialect = %v", opts["dialect"])
	}
	if opts["transactionType"] != "DEFERRED" {
		t.Errorf("options transactionType = %v", opts["transactionType"])
	}
}
