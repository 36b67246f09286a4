package scheduler

import (
	"context"
	"time"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/logger"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
)

// Confirmer is the slice of the ledger the scheduler needs.
type Confirmer interface {
	Confirm(ctx context.Context) (*models.Record, error)
}

// Scheduler invokes ledger confirmation on a fixed interval. It runs
// concurrently with the command loop; the ledger's own mutex serializes the
// two. Run exits when ctx is cancelled.
type Scheduler struct {
	ledger   Confirmer
	interval time.Duration
}

func New(ledger Confirmer, interval time.Duration) *Scheduler {
	return &Scheduler{
		ledger:   ledger,
		interval: interval,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			record, err := s.ledger.Confirm(ctx)
			if err != nil {
				logger.Error("confirmation failed", err, logger.Fields{
					"record_id": recordID(record),
				})
				continue
			}
			if record != nil {
				logger.Info("confirmed record", logger.Fields{
					"record_id": record.ID,
					"intents":   len(record.Intents),
				})
			}
		}
	}
}

func recordID(record *models.Record) string {
	if record == nil {
		return ""
	}
	return record.ID
}
