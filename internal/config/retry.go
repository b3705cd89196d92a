package config

// Retry holds the retry budget passed through to the database client. This
// layer performs no retries itself; the count is advisory data.
type Retry struct {
	max int
}

// Max is the maximum number of connection retries the client may attempt.
func (r Retry) Max() int { return r.max }

// DefaultRetry builds the retry settings from the bundled defaults document.
func DefaultRetry() (Retry, error) {
	doc, err := LoadDefaults()
	if err != nil {
		return Retry{}, wrapDefault("retry", err)
	}
	sub, err := requireObject(doc, "retry")
	if err != nil {
		return Retry{}, wrapDefault("retry", err)
	}
	return defaultRetry(sub)
}

func defaultRetry(sub Tree) (Retry, error) {
	var r Retry
	var err error
	if r.max, err = requireInt(sub, "max"); err != nil {
		return Retry{}, wrapDefault("retry", err)
	}
	return r, nil
}

// RetryFrom validates raw retry settings, substituting the bundled default
// for every absent field.
func RetryFrom(raw Tree) (Retry, error) {
	def, err := DefaultRetry()
	if err != nil {
		return Retry{}, err
	}

	var r Retry
	if r.max, err = optionalInt(raw, "max", def.max); err != nil {
		return Retry{}, wrapUser("retry", err)
	}
	return r, nil
}
