package dialect

import (
	go_ora "github.com/sijms/go-ora/v2" // also registers the "oracle" driver

	"github.com/sluicedb/sluice/internal/config"
)

func init() {
	register(oracleDialect{})
}

type oracleDialect struct{}

func (oracleDialect) Name() string       { return "oracle" }
func (oracleDialect) DriverName() string { return "oracle" }

// DSN builds an oracle:// URL via go-ora, using the configured database as
// the service name.
func (oracleDialect) DSN(cfg config.Model) (string, error) {
	var user, pass, service string
	if u := cfg.Username(); u.Valid {
		user = u.String
	}
	if p := cfg.Password(); p.Valid {
		pass = p.String
	}
	if db := cfg.Database(); db.Valid {
		service = db.String
	}
	return go_ora.BuildUrl(cfg.Host(), cfg.Port(), service, user, pass, nil), nil
}
