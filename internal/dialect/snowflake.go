package dialect

import (
	"fmt"

	gosnowflake "github.com/snowflakedb/gosnowflake" // registers the "snowflake" driver

	"github.com/sluicedb/sluice/internal/config"
)

func init() {
	register(snowflakeDialect{})
}

type snowflakeDialect struct{}

func (snowflakeDialect) Name() string       { return "snowflake" }
func (snowflakeDialect) DriverName() string { return "snowflake" }

// DSN serializes a snowflake DSN. The host field carries the account
// identifier (e.g. "myorg-account"); port and protocol do not apply.
func (snowflakeDialect) DSN(cfg config.Model) (string, error) {
	sc := gosnowflake.Config{Account: cfg.Host()}
	if u := cfg.Username(); u.Valid {
		sc.User = u.String
	}
	if p := cfg.Password(); p.Valid {
		sc.Password = p.String
	}
	if db := cfg.Database(); db.Valid {
		sc.Database = db.String
	}
	dsn, err := gosnowflake.DSN(&sc)
	if err != nil {
		return "", fmt.Errorf("snowflake dsn: %w", err)
	}
	return dsn, nil
}
