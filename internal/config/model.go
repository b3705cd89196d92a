package config

import "database/sql"

// Model is the fully resolved client configuration: every field populated,
// either from the caller's raw configuration or from the bundled defaults
// document. Immutable once built; construct with DefaultModel or ModelFrom.
type Model struct {
	host             string
	port             int
	username         sql.NullString
	password         sql.NullString
	database         sql.NullString
	dialect          string
	protocol         string
	sync             Sync
	logging          bool
	omitNull         bool
	pool             Pool
	transaction      Transaction
	retry            Retry
	operatorsAliases Tree
}

// Host is the database server hostname.
func (m Model) Host() string { return m.host }

// Port is the database server port.
func (m Model) Port() int { return m.port }

// Username is the login user; invalid when null.
func (m Model) Username() sql.NullString { return m.username }

// Password is the login password; invalid when null.
func (m Model) Password() sql.NullString { return m.password }

// Database is the database (or file, for sqlite) to open; invalid when null.
func (m Model) Database() sql.NullString { return m.database }

// Dialect selects the SQL dialect. Not validated here; unsupported values
// fail at client construction.
func (m Model) Dialect() string { return m.dialect }

// Protocol is the connection protocol (typically "tcp").
func (m Model) Protocol() string { return m.protocol }

// Sync returns the schema-synchronization flags.
func (m Model) Sync() Sync { return m.sync }

// Logging reports whether the client should log issued statements.
func (m Model) Logging() bool { return m.logging }

// OmitNull reports whether null attributes are omitted from writes.
func (m Model) OmitNull() bool { return m.omitNull }

// Pool returns the connection-pool settings.
func (m Model) Pool() Pool { return m.pool }

// Transaction returns the default transaction settings.
func (m Model) Transaction() Transaction { return m.transaction }

// Retry returns the advisory retry budget.
func (m Model) Retry() Retry { return m.retry }

// OperatorsAliases returns the operator alias table, or nil when null. The
// returned tree is shared; callers must not mutate it.
func (m Model) OperatorsAliases() Tree { return m.operatorsAliases }

// DefaultModel builds the complete configuration from the bundled defaults
// document alone, recursing into each nested group's default builder.
func DefaultModel() (Model, error) {
	doc, err := LoadDefaults()
	if err != nil {
		return Model{}, wrapDefault("model", err)
	}

	var m Model
	if m.host, err = requireString(doc, "host"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.port, err = requireInt(doc, "port"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.username, err = requireNullableString(doc, "username"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.password, err = requireNullableString(doc, "password"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.database, err = requireNullableString(doc, "database"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.dialect, err = requireString(doc, "dialect"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.protocol, err = requireString(doc, "protocol"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.logging, err = requireBool(doc, "logging"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.omitNull, err = requireBool(doc, "omit-null"); err != nil {
		return Model{}, wrapDefault("model", err)
	}
	if m.operatorsAliases, err = requireNullableObject(doc, "operators-aliases"); err != nil {
		return Model{}, wrapDefault("model", err)
	}

	if m.sync, err = DefaultSync(); err != nil {
		return Model{}, err
	}
	if m.pool, err = DefaultPool(); err != nil {
		return Model{}, err
	}
	if m.transaction, err = DefaultTransaction(); err != nil {
		return Model{}, err
	}
	if m.retry, err = DefaultRetry(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// ModelFrom validates a raw configuration tree against the bundled defaults,
// substituting the default for every absent field. An absent nested group
// resolves from an empty tree, so the group's own default-filling applies
// inside its builder.
func ModelFrom(raw Tree) (Model, error) {
	def, err := DefaultModel()
	if err != nil {
		return Model{}, err
	}

	var m Model
	if m.host, err = optionalString(raw, "host", def.host); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.port, err = optionalInt(raw, "port", def.port); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.username, err = optionalNullableString(raw, "username", def.username); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.password, err = optionalNullableString(raw, "password", def.password); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.database, err = optionalNullableString(raw, "database", def.database); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.dialect, err = optionalString(raw, "dialect", def.dialect); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.protocol, err = optionalString(raw, "protocol", def.protocol); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.logging, err = optionalBool(raw, "logging", def.logging); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.omitNull, err = optionalBool(raw, "omit-null", def.omitNull); err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.operatorsAliases, err = optionalNullableObject(raw, "operators-aliases", def.operatorsAliases); err != nil {
		return Model{}, wrapUser("model", err)
	}

	syncRaw, err := optionalObject(raw, "sync", Tree{})
	if err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.sync, err = SyncFrom(syncRaw); err != nil {
		return Model{}, err
	}

	poolRaw, err := optionalObject(raw, "pool", Tree{})
	if err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.pool, err = PoolFrom(poolRaw); err != nil {
		return Model{}, err
	}

	txRaw, err := optionalObject(raw, "transaction", Tree{})
	if err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.transaction, err = TransactionFrom(txRaw); err != nil {
		return Model{}, err
	}

	retryRaw, err := optionalObject(raw, "retry", Tree{})
	if err != nil {
		return Model{}, wrapUser("model", err)
	}
	if m.retry, err = RetryFrom(retryRaw); err != nil {
		return Model{}, err
	}

	return m, nil
}

// Options serializes the configuration into the flat map of options the
// database client consumes. Transaction settings flatten into top-level
// transactionType / isolationLevel keys; nullable fields serialize as nil.
func (m Model) Options() map[string]any {
	var username, password, database any
	if m.username.Valid {
		username = m.username.String
	}
	if m.password.Valid {
		password = m.password.String
	}
	if m.database.Valid {
		database = m.database.String
	}

	var aliases any
	if m.operatorsAliases != nil {
		aliases = map[string]any(m.operatorsAliases)
	}

	return map[string]any{
		"host":     m.host,
		"port":     m.port,
		"username": username,
		"password": password,
		"database": database,
		"dialect":  m.dialect,
		"protocol": m.protocol,
		"sync": map[string]any{
			"force": m.sync.force,
			"alter": m.sync.alter,
		},
		"logging":  m.logging,
		"omitNull": m.omitNull,
		"pool": map[string]any{
			"max":     m.pool.max,
			"min":     m.pool.min,
			"idle":    m.pool.idle,
			"acquire": m.pool.acquire,
			"evict":   m.pool.evict,
		},
		"transactionType": m.transaction.txType,
		"isolationLevel":  m.transaction.isolationLevel,
		"retry": map[string]any{
			"max": m.retry.max,
		},
		"operatorsAliases": aliases,
	}
}
