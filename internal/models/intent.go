package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type IntentKind string

const (
	IntentTransfer IntentKind = "TRANSFER"
	IntentCredit   IntentKind = "CREDIT"
)

// TransferIntent is a validated transfer waiting in the pending queue.
// For IntentCredit there is no debited source and From is empty.
type TransferIntent struct {
	ID          string
	Kind        IntentKind
	From        string
	To          string
	Amount      decimal.Decimal
	SubmittedAt time.Time
}
