package domain

import "time"

// Wallet holds the creation credits of one professional, keyed by email.
// Creating a project through the pro dashboard debits one credit; the
// administrative surface bypasses the wallet.
type Wallet struct {
	BrokerEmail string
	Credits     int
	UpdatedAt   time.Time
}
