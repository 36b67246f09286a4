package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a named balance held by the ledger.
// Balances change only when a confirmation cycle applies queued intents.
type Account struct {
	ID        string
	Balance   decimal.Decimal
	CreatedAt time.Time
}
