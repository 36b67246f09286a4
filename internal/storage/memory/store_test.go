package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/storage/memory"
)

func TestMemoryRecordStoreAppendsInOrder(t *testing.T) {
	store := memory.NewMemoryRecordStore()
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		record := models.Record{ID: id, ConfirmedAt: time.Now()}
		if err := store.SaveRecord(ctx, record); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, id := range []string{"r1", "r2", "r3"} {
		if records[i].ID != id {
			t.Fatalf("record %d: got %s, want %s", i, records[i].ID, id)
		}
	}
}

func TestGetRecordsReturnsCopy(t *testing.T) {
	store := memory.NewMemoryRecordStore()
	ctx := context.Background()

	if err := store.SaveRecord(ctx, models.Record{ID: "r1"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	first, _ := store.GetRecords()
	first[0].ID = "mutated"

	second, _ := store.GetRecords()
	if second[0].ID != "r1" {
		t.Fatal("GetRecords exposed internal state")
	}
}
