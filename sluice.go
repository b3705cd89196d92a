// Package sluice resolves raw, partially-specified database configuration
// against a bundled defaults document and constructs connected sqlx clients.
//
// The package is a thin re-export of the internal config and client
// packages; all behavior lives there.
package sluice

import (
	"context"

	"github.com/sluicedb/sluice/internal/client"
	"github.com/sluicedb/sluice/internal/config"
)

// Tree is a decoded raw configuration document.
type Tree = config.Tree

// Model is a fully resolved, immutable client configuration.
type Model = config.Model

// ConfigError is the tagged error type for configuration failures.
type ConfigError = config.Error

// ConfigErrorKind discriminates configuration failures.
type ConfigErrorKind = config.ErrorKind

// Configuration error kinds.
const (
	KindMissingField         = config.KindMissingField
	KindTypeMismatch         = config.KindTypeMismatch
	KindDefaultConfigInvalid = config.KindDefaultConfigInvalid
	KindUserConfigInvalid    = config.KindUserConfigInvalid
	KindIO                   = config.KindIO
	KindParse                = config.KindParse
)

// Client is a constructed database client handle.
type Client = client.Client

// FactoryError is the error type for client construction failures.
type FactoryError = client.Error

// Factory error kinds.
const (
	KindConfiguration = client.KindConfiguration
	KindAuthenticate  = client.KindAuthenticate
)

// Default builds the complete configuration from the bundled defaults
// document alone.
func Default() (Model, error) {
	return config.DefaultModel()
}

// From validates a raw configuration tree, substituting bundled defaults for
// absent fields.
func From(raw Tree) (Model, error) {
	return config.ModelFrom(raw)
}

// Create resolves raw configuration and constructs a database client,
// optionally waiting for the authentication handshake.
func Create(ctx context.Context, raw Tree, waitForAuthenticate bool) (*Client, error) {
	return client.Create(ctx, raw, waitForAuthenticate)
}
