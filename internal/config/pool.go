package config

// Pool holds connection-pool settings passed through to the database client.
// All durations are whole milliseconds, matching the defaults document; no
// cross-field constraint (such as min <= max) is enforced.
type Pool struct {
	max     int
	min     int
	idle    int
	acquire int
	evict   int
}

// Max is the maximum number of open connections.
func (p Pool) Max() int { return p.max }

// Min is the minimum number of pooled connections.
func (p Pool) Min() int { return p.min }

// Idle is the time in milliseconds a connection may sit idle before release.
func (p Pool) Idle() int { return p.idle }

// Acquire is the time in milliseconds to wait for a connection before the
// client gives up. Advisory: this layer enforces no timeout itself.
func (p Pool) Acquire() int { return p.acquire }

// Evict is the interval in milliseconds between idle-connection sweeps.
func (p Pool) Evict() int { return p.evict }

// DefaultPool builds the pool settings from the bundled defaults document.
func DefaultPool() (Pool, error) {
	doc, err := LoadDefaults()
	if err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	sub, err := requireObject(doc, "pool")
	if err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	return defaultPool(sub)
}

func defaultPool(sub Tree) (Pool, error) {
	var p Pool
	var err error
	if p.max, err = requireInt(sub, "max"); err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	if p.min, err = requireInt(sub, "min"); err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	if p.idle, err = requireInt(sub, "idle"); err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	if p.acquire, err = requireInt(sub, "acquire"); err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	if p.evict, err = requireInt(sub, "evict"); err != nil {
		return Pool{}, wrapDefault("pool", err)
	}
	return p, nil
}

// PoolFrom validates raw pool settings, substituting the bundled default for
// every absent field.
func PoolFrom(raw Tree) (Pool, error) {
	def, err := DefaultPool()
	if err != nil {
		return Pool{}, err
	}

	var p Pool
	if p.max, err = optionalInt(raw, "max", def.max); err != nil {
		return Pool{}, wrapUser("pool", err)
	}
	if p.min, err = optionalInt(raw, "min", def.min); err != nil {
		return Pool{}, wrapUser("pool", err)
	}
	if p.idle, err = optionalInt(raw, "idle", def.idle); err != nil {
		return Pool{}, wrapUser("pool", err)
	}
	if p.acquire, err = optionalInt(raw, "acquire", def.acquire); err != nil {
		return Pool{}, wrapUser("pool", err)
	}
	if p.evict, err = optionalInt(raw, "evict", def.evict); err != nil {
		return Pool{}, wrapUser("pool", err)
	}
	return p, nil
}
