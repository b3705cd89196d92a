package config

// Expected transaction types. The type field is deliberately not validated
// against this list; unknown values pass through to the client unchanged.
const (
	TransactionDeferred  = "DEFERRED"
	TransactionImmediate = "IMMEDIATE"
	TransactionExclusive = "EXCLUSIVE"
)

// Expected isolation levels, likewise unenforced.
const (
	IsolationReadUncommitted = "READ_UNCOMMITTED"
	IsolationReadCommitted   = "READ_COMMITTED"
	IsolationRepeatableRead  = "REPEATABLE_READ"
	IsolationSerializable    = "SERIALIZABLE"
)

// Transaction holds default transaction settings passed through to the
// database client.
type Transaction struct {
	txType         string
	isolationLevel string
}

// Type is the default transaction type (expected: DEFERRED, IMMEDIATE or
// EXCLUSIVE).
func (t Transaction) Type() string { return t.txType }

// IsolationLevel is the default isolation level (expected: one of the four
// ANSI levels).
func (t Transaction) IsolationLevel() string { return t.isolationLevel }

// DefaultTransaction builds the transaction settings from the bundled
// defaults document.
func DefaultTransaction() (Transaction, error) {
	doc, err := LoadDefaults()
	if err != nil {
		return Transaction{}, wrapDefault("transaction", err)
	}
	sub, err := requireObject(doc, "transaction")
	if err != nil {
		return Transaction{}, wrapDefault("transaction", err)
	}
	return defaultTransaction(sub)
}

func defaultTransaction(sub Tree) (Transaction, error) {
	var t Transaction
	var err error
	if t.txType, err = requireString(sub, "type"); err != nil {
		return Transaction{}, wrapDefault("transaction", err)
	}
	if t.isolationLevel, err = requireString(sub, "isolation-level"); err != nil {
		return Transaction{}, wrapDefault("transaction", err)
	}
	return t, nil
}

// TransactionFrom validates raw transaction settings, substituting the
// bundled default for every absent field.
func TransactionFrom(raw Tree) (Transaction, error) {
	def, err := DefaultTransaction()
	if err != nil {
		return Transaction{}, err
	}

	var t Transaction
	if t.txType, err = optionalString(raw, "type", def.txType); err != nil {
		return Transaction{}, wrapUser("transaction", err)
	}
	if t.isolationLevel, err = optionalString(raw, "isolation-level", def.isolationLevel); err != nil {
		return Transaction{}, wrapUser("transaction", err)
	}
	return t, nil
}
