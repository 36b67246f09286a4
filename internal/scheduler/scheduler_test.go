package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/scheduler"
)

type countingConfirmer struct {
	calls atomic.Int64
}

func (c *countingConfirmer) Confirm(ctx context.Context) (*models.Record, error) {
	c.calls.Add(1)
	return nil, nil
}

func TestSchedulerConfirmsOnInterval(t *testing.T) {
	confirmer := &countingConfirmer{}
	s := scheduler.New(confirmer, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}

	if got := confirmer.calls.Load(); got == 0 {
		t.Fatal("scheduler never invoked Confirm")
	}

	settled := confirmer.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if confirmer.calls.Load() != settled {
		t.Fatal("scheduler kept confirming after cancellation")
	}
}
