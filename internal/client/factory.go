package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sluicedb/sluice/internal/config"
	"github.com/sluicedb/sluice/internal/dialect"
)

// Create resolves raw configuration against the bundled defaults and
// constructs a database client. With waitForAuthenticate set, the client is
// pinged before being returned and a connectivity failure surfaces as a
// KindAuthenticate error; otherwise the pool is opened lazily and the caller
// may Authenticate later.
func Create(ctx context.Context, raw config.Tree, waitForAuthenticate bool) (*Client, error) {
	cfg, err := config.ModelFrom(raw)
	if err != nil {
		return nil, &Error{Kind: KindConfiguration, Err: err}
	}

	d, err := dialect.Lookup(cfg.Dialect())
	if err != nil {
		return nil, &Error{Kind: KindConfiguration, Err: err}
	}

	dsn, err := d.DSN(cfg)
	if err != nil {
		return nil, &Error{Kind: KindConfiguration, Err: err}
	}

	db, err := sqlx.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, &Error{Kind: KindConfiguration, Err: err}
	}

	applyPool(db, cfg.Pool())

	c := &Client{
		id:      uuid.NewString(),
		dialect: d.Name(),
		cfg:     cfg,
		db:      db,
	}

	if waitForAuthenticate {
		if err := c.Authenticate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}
	return c, nil
}

// applyPool maps the pool settings onto database/sql's pool knobs. Acquire
// and evict have no database/sql counterpart; they remain advisory data in
// the serialized options.
func applyPool(db *sqlx.DB, p config.Pool) {
	if p.Max() > 0 {
		db.SetMaxOpenConns(p.Max())
	}
	if p.Min() > 0 {
		db.SetMaxIdleConns(p.Min())
	}
	if p.Idle() > 0 {
		db.SetConnMaxIdleTime(time.Duration(p.Idle()) * time.Millisecond)
	}
}
