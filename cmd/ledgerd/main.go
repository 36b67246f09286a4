package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/cli"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/config"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/events"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/events/kafka"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/interfaces"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/ledger"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/logger"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/scheduler"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var store interfaces.RecordStore = memory.NewMemoryRecordStore()
	if cfg.RecordStore == "postgres" {
		db, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		store = postgres.NewPostgresRecordStore(db)
	}

	var publisher interfaces.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	ledgerService := ledger.NewLedger(store, publisher)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.New(ledgerService, cfg.ConfirmInterval)
	go sched.Run(ctx)

	logger.Info("ledger started", logger.Fields{
		"confirm_interval": cfg.ConfirmInterval.String(),
		"record_store":     cfg.RecordStore,
		"kafka_enabled":    len(cfg.KafkaBrokers) > 0,
	})

	cli.NewRunner(ledgerService, os.Stdin, os.Stdout).Run()

	cancel()
	logger.Info("ledger stopped", logger.Fields{})
}
