package models

import "time"

// Record is an immutable batch of intents that were confirmed together.
// Once appended to the history it is never mutated or removed.
type Record struct {
	ID          string
	Intents     []TransferIntent
	ConfirmedAt time.Time
}
