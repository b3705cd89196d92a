package dialect

import (
	"net"
	"net/url"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/sluicedb/sluice/internal/config"
)

func init() {
	register(postgresDialect{})
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "pgx" }

func (postgresDialect) DSN(cfg config.Model) (string, error) {
	u := url.URL{
		Scheme: "postgres",
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
		u.Path = "/" + db.String
	}
	return u.String(), nil
}
