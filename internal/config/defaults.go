package config

import (
	"bytes"
	"embed"
	"encoding/json"
)

//go:embed defaults.json
var defaultsFS embed.FS

// LoadDefaults reads and parses the bundled defaults document. The document
// is re-read and re-parsed on every call; resolution is not a hot path and
// keeping the loader stateless means concurrent callers need no locking.
// Numbers decode as json.Number so integer fields keep integer semantics.
func LoadDefaults() (Tree, error) {
	data, err := defaultsFS.ReadFile("defaults.json")
	if err != nil {
		return nil, ioError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Tree
	if err := dec.Decode(&doc); err != nil {
		return nil, parseError(err)
	}
	return doc, nil
}
