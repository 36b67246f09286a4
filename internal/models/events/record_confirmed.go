package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordConfirmed struct {
	RecordID    string          `json:"record_id"`
	IntentCount int             `json:"intent_count"`
	TotalMoved  decimal.Decimal `json:"total_moved"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
}
