package dialect

import (
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/sluicedb/sluice/internal/config"
)

func init() {
	register(sqliteDialect{})
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return "sqlite" }
func (sqliteDialect) DriverName() string { return "sqlite" }

// DSN is the database file path, or an in-memory database when the
// configuration leaves database null. Host, port and credentials do not
// apply to sqlite and are ignored.
func (sqliteDialect) DSN(cfg config.Model) (string, error) {
	if db := cfg.Database(); db.Valid {
		return db.String, nil
	}
	return ":memory:", nil
}
