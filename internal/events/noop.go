package events

import "github.com/sheikh-saqib/batch-confirmation-ledger/internal/interfaces"

// NopPublisher discards events. It is the default when no brokers are
// configured, keeping the ledger a closed single process.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, event any) error {
	return nil
}

var _ interfaces.EventPublisher = NopPublisher{}
