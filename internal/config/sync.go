package config

// Sync holds the schema-synchronization flags passed through to the database
// client. Immutable once built.
type Sync struct {
	force bool
	alter bool
}

// Force reports whether existing tables are dropped before sync.
func (s Sync) Force() bool { return s.force }

// Alter reports whether existing tables are altered in place to match
// model definitions.
func (s Sync) Alter() bool { return s.alter }

// DefaultSync builds the sync settings from the bundled defaults document.
func DefaultSync() (Sync, error) {
	doc, err := LoadDefaults()
	if err != nil {
		return Sync{}, wrapDefault("sync", err)
	}
	sub, err := requireObject(doc, "sync")
	if err != nil {
		return Sync{}, wrapDefault("sync", err)
	}
	return defaultSync(sub)
}

func defaultSync(sub Tree) (Sync, error) {
	var s Sync
	var err error
	if s.force, err = requireBool(sub, "force"); err != nil {
		return Sync{}, wrapDefault("sync", err)
	}
	if s.alter, err = requireBool(sub, "alter"); err != nil {
		return Sync{}, wrapDefault("sync", err)
	}
	return s, nil
}

// SyncFrom validates raw sync settings, substituting the bundled default for
// every absent field. Computing the defaults first means every call also
// validates the bundled document.
func SyncFrom(raw Tree) (Sync, error) {
	def, err := DefaultSync()
	if err != nil {
		return Sync{}, err
	}

	var s Sync
	if s.force, err = optionalBool(raw, "force", def.force); err != nil {
		return Sync{}, wrapUser("sync", err)
	}
	if s.alter, err = optionalBool(raw, "alter", def.alter); err != nil {
		return Sync{}, wrapUser("sync", err)
	}
	return s, nil
}
