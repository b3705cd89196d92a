package dialect

import (
	"net"
	"strconv"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/sluicedb/sluice/internal/config"
)

func init() {
	register(mysqlDialect{})
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string       { return "mysql" }
func (mysqlDialect) DriverName() string { return "mysql" }

// DSN formats a go-sql-driver DSN through mysql.Config so credentials with
// URL-special characters survive untouched.
func (mysqlDialect) DSN(cfg config.Model) (string, error) {
	mc := mysqldriver.NewConfig()
	mc.Net = cfg.Protocol()
	mc.Addr = net.JoinHostPort(cfg.Host(), strconv.Itoa(cfg.Port()))
	if u := cfg.Username(); u.Valid {
		mc.User = u.String
	}
	if p := cfg.Password(); p.Valid {
		mc.Passwd = p.String
	}
	if d := cfg.Database(); d.Valid {
		mc.DBName = d.String
	}
	return mc.FormatDSN(), nil
}
