package interfaces

import (
	"context"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
)

type RecordStore interface {
	SaveRecord(ctx context.Context, record models.Record) error
	GetRecords() ([]models.Record, error)
}
