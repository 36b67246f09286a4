package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/interfaces"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
	modelevents "github.com/sheikh-saqib/batch-confirmation-ledger/internal/models/events"
	"github.com/shopspring/decimal"
)

const RecordConfirmedTopic = "record_confirmed"

// Ledger owns the account store, the pending queue and the confirmed
// history. A single mutex serializes every operation; the command loop and
// the confirmation scheduler share one Ledger and contend on that gate.
type Ledger struct {
	mu       sync.Mutex
	accounts *accountStore
	pending  []models.TransferIntent
	reserved map[string]decimal.Decimal // queued debits per source account
	history  []models.Record

	store     interfaces.RecordStore    // archive for confirmed records
	publisher interfaces.EventPublisher // notified after each confirmation
}

// NewLedger is a constructor function that creates a new Ledger instance.
// We pass in a record archive and an event publisher (no-op for a closed
// single-process run).
func NewLedger(store interfaces.RecordStore, publisher interfaces.EventPublisher) *Ledger {
	return &Ledger{
		accounts:  newAccountStore(),
		reserved:  make(map[string]decimal.Decimal),
		store:     store,
		publisher: publisher,
	}
}

func (l *Ledger) CreateAccount(id string, balance decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.accounts.create(id, balance)
}

// Submit validates a transfer and appends it to the pending queue in arrival
// order. The debit is not applied here; it happens at confirmation. To keep
// the queue from jointly overdrawing an account, validation checks the
// confirmed balance minus the debits already queued against it.
func (l *Ledger) Submit(from, to string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}
	if !l.accounts.exists(from) || !l.accounts.exists(to) {
		return ErrAccountNotFound
	}

	balance, err := l.accounts.balance(from)
	if err != nil {
		return err
	}
	available := balance.Sub(l.reserved[from])
	if available.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	l.reserved[from] = l.reserved[from].Add(amount)
	l.pending = append(l.pending, models.TransferIntent{
		ID:          uuid.New().String(),
		Kind:        models.IntentTransfer,
		From:        from,
		To:          to,
		Amount:      amount,
		SubmittedAt: time.Now(),
	})
	return nil
}

// Mint queues a system-originated credit with no debited source. Confirming
// it increases total supply by amount.
func (l *Ledger) Mint(to string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}
	if !l.accounts.exists(to) {
		return ErrAccountNotFound
	}

	l.pending = append(l.pending, models.TransferIntent{
		ID:          uuid.New().String(),
		Kind:        models.IntentCredit,
		To:          to,
		Amount:      amount,
		SubmittedAt: time.Now(),
	})
	return nil
}

func (l *Ledger) Balance(id string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.accounts.balance(id)
}

// Confirm drains the entire pending queue, applies each intent in arrival
// order and appends a Record to the history. It returns nil when the queue
// was empty. Drain, apply and append happen as one atomic unit under the
// ledger mutex; no other operation can observe a drained queue with stale
// balances. Archival and event publishing happen after the gate is released,
// against the already-committed record.
func (l *Ledger) Confirm(ctx context.Context) (*models.Record, error) {
	l.mu.Lock()

	if len(l.pending) == 0 {
		l.mu.Unlock()
		return nil, nil
	}

	batch := l.pending
	l.pending = nil
	l.reserved = make(map[string]decimal.Decimal)

	total := decimal.Zero
	for _, intent := range batch {
		if intent.Kind == models.IntentTransfer {
			if err := l.accounts.applyDelta(intent.From, intent.Amount.Neg()); err != nil {
				panic(fmt.Sprintf("ledger: intent %s debits unknown account %q", intent.ID, intent.From))
			}
		}
		if err := l.accounts.applyDelta(intent.To, intent.Amount); err != nil {
			panic(fmt.Sprintf("ledger: intent %s credits unknown account %q", intent.ID, intent.To))
		}
		total = total.Add(intent.Amount)
	}

	record := models.Record{
		ID:          uuid.New().String(),
		Intents:     batch,
		ConfirmedAt: time.Now(),
	}
	l.history = append(l.history, record)
	l.mu.Unlock()

	if err := l.store.SaveRecord(ctx, record); err != nil {
		return &record, err
	}

	event := modelevents.RecordConfirmed{
		RecordID:    record.ID,
		IntentCount: len(record.Intents),
		TotalMoved:  total,
		ConfirmedAt: record.ConfirmedAt,
	}
	if err := l.publisher.Publish(RecordConfirmedTopic, event); err != nil {
		return &record, err
	}
	return &record, nil
}

// Pending returns a copy of the queued intents so external code can't
// modify internal state.
func (l *Ledger) Pending() []models.TransferIntent {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := make([]models.TransferIntent, len(l.pending))
	copy(copied, l.pending)
	return copied
}

// Records returns a copy of the confirmed history.
func (l *Ledger) Records() []models.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := make([]models.Record, len(l.history))
	copy(copied, l.history)
	return copied
}
