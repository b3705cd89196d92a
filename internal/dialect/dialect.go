// Package dialect maps a resolved configuration's dialect name onto a
// registered database/sql driver and builds the driver-specific DSN.
package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sluicedb/sluice/internal/config"
)

// Dialect translates a resolved configuration into connection parameters for
// one database engine.
type Dialect interface {
	// Name is the dialect identifier matched against Model.Dialect().
	Name() string

	// DriverName is the database/sql driver to open.
	DriverName() string

	// DSN builds the driver-specific connection string.
	DSN(cfg config.Model) (string, error)
}

var registry = map[string]Dialect{}

func register(d Dialect) {
	registry[d.Name()] = d
}

// Lookup returns the dialect registered under name.
func Lookup(name string) (Dialect, error) {
	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
