package postgres

import (
	"context"
	"database/sql"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/interfaces"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
)

// PostgresRecordStore archives confirmed records in two tables: one row per
// record and one row per intent, keyed by record id and position.
type PostgresRecordStore struct {
	db *sql.DB
}

func NewPostgresRecordStore(db *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{
		db: db,
	}
}

func (p *PostgresRecordStore) SaveRecord(ctx context.Context, record models.Record) error {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const recordQuery = `INSERT INTO records (id, confirmed_at) VALUES ($1, $2)`
	if _, err = dbTx.ExecContext(ctx, recordQuery, record.ID, record.ConfirmedAt); err != nil {
		return err
	}

	const intentQuery = `INSERT INTO record_intents (id, record_id, position, kind, from_account, to_account, amount, submitted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for i, intent := range record.Intents {
		from := sql.NullString{String: intent.From, Valid: intent.From != ""}
		if _, err = dbTx.ExecContext(ctx, intentQuery,
			intent.ID, record.ID, i, string(intent.Kind), from, intent.To, intent.Amount, intent.SubmittedAt); err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

func (p *PostgresRecordStore) GetRecords() ([]models.Record, error) {
	const recordQuery = `SELECT id, confirmed_at FROM records ORDER BY confirmed_at`

	rows, err := p.db.Query(recordQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	index := make(map[string]int)

	for rows.Next() {
		var record models.Record
		if err := rows.Scan(&record.ID, &record.ConfirmedAt); err != nil {
			return nil, err
		}
		index[record.ID] = len(records)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const intentQuery = `SELECT id, record_id, kind, from_account, to_account, amount, submitted_at
	FROM record_intents ORDER BY record_id, position`

	intentRows, err := p.db.Query(intentQuery)
	if err != nil {
		return nil, err
	}
	defer intentRows.Close()

	for intentRows.Next() {
		var intent models.TransferIntent
		var recordID string
		var kind string
		var from sql.NullString

		if err := intentRows.Scan(&intent.ID, &recordID, &kind, &from, &intent.To, &intent.Amount, &intent.SubmittedAt); err != nil {
			return nil, err
		}
		intent.Kind = models.IntentKind(kind)
		intent.From = from.String

		if i, ok := index[recordID]; ok {
			records[i].Intents = append(records[i].Intents, intent)
		}
	}
	if err := intentRows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

var _ interfaces.RecordStore = (*PostgresRecordStore)(nil)
