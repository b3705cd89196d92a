// Package client constructs database clients from resolved configuration.
package client

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sluicedb/sluice/internal/config"
)

// Client is a handle on one database connection pool together with the
// configuration that produced it.
type Client struct {
	id      string
	dialect string
	cfg     config.Model
	db      *sqlx.DB
}

// ID is a unique identifier for this client instance, for log correlation.
func (c *Client) ID() string { return c.id }

// Dialect is the dialect the client was constructed for.
func (c *Client) Dialect() string { return c.dialect }

// Config returns the resolved configuration.
func (c *Client) Config() config.Model { return c.cfg }

// Options returns the flat options map derived from the configuration.
func (c *Client) Options() map[string]any { return c.cfg.Options() }

// DB returns the underlying sqlx connection pool.
func (c *Client) DB() *sqlx.DB { return c.db }

// Authenticate verifies connectivity with a ping. The database error is
// passed through unchanged as the cause; no timeout is imposed here, so a
// never-settling handshake blocks until ctx is cancelled by the caller.
func (c *Client) Authenticate(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return &Error{Kind: KindAuthenticate, Err: err}
	}
	return nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}
