package dialect

import (
	"net"
	"net/url"
	"strconv"

	_ "github.com/microsoft/go-mssqldb" // registers the "sqlserver" driver

	"github.com/sluicedb/sluice/internal/config"
)

func init() {
	register(mssqlDialect{})
}

type mssqlDialect struct{}

func (mssqlDialect) Name() string       { return "mssql" }
func (mssqlDialect) DriverName() string { return "sqlserver" }

func (mssqlDialect) DSN(cfg config.Model) (string, error) {
	u := url.URL{
		Scheme: "sqlserver",
		Host:   net.JoinHostPort(cfg.Host(), strconv.Itoa(cfg.Port())),
	}
	if user := cfg.Username(); user.Valid {
		if pass := cfg.Password(); pass.Valid {
			u.User = url.UserPassword(user.String, pass.String)
		} else {
			u.User = url.User(user.String)
		}
	}
	if db := cfg.Database(); db.Valid {
		q := url.Values{}
		q.Set("database", db.String)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
