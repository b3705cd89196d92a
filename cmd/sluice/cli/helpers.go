package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sluicedb/sluice/internal/config"
)

// loadRawConfig reads a raw configuration file (JSON or YAML, by extension)
// into a generic tree. An empty path yields an empty tree, which resolves to
// the bundled defaults.
func loadRawConfig(path string) (config.Tree, error) {
	if path == "" {
		return config.Tree{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return config.Tree(v.AllSettings()), nil
}

// printOptions renders a resolved options map as YAML or indented JSON.
func printOptions(w io.Writer, options map[string]any, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(options)
	}

	data, err := yaml.Marshal(options)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// redactPassword masks the password in an options map before display.
func redactPassword(options map[string]any) map[string]any {
	if options["password"] != nil {
		options["password"] = "********"
	}
	return options
}
