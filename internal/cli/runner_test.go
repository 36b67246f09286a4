package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/cli"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/events"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/ledger"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/storage/memory"
)

func runScript(t *testing.T, script string) []string {
	t.Helper()

	l := ledger.NewLedger(memory.NewMemoryRecordStore(), events.NopPublisher{})
	var out bytes.Buffer
	cli.NewRunner(l, strings.NewReader(script), &out).Run()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	return lines
}

func TestRunnerSession(t *testing.T) {
	script := strings.Join([]string{
		"create-account Alice 100",
		"create-account Alice 100",
		"create-account Bob 50",
		"transfer Alice Bob 30",
		"balance Alice",
		"transfer Alice Ghost 10",
		"transfer Alice Bob 0",
		"transfer Alice Bob 500",
		"balance Ghost",
		"frobnicate",
		"exit",
	}, "\n")

	want := []string{
		"Account created successfully with id: Alice",
		"Account already exists!",
		"Account created successfully with id: Bob",
		"Transfer queued for confirmation.",
		"Balance of Alice: 100", // debit applies at confirmation, not submission
		"One or both accounts not found.",
		"Transfer amount must be positive.",
		"Insufficient funds.",
		"Account not found.",
		"Invalid command.",
		"Bye.",
	}

	got := runScript(t, script)
	if len(got) != len(want) {
		t.Fatalf("output length: got %d lines, want %d\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunnerStopsAtExit(t *testing.T) {
	got := runScript(t, "exit\nbalance Alice\n")
	if len(got) != 1 || got[0] != "Bye." {
		t.Fatalf("runner kept reading after exit: %v", got)
	}
}

func TestRunnerStopsAtEOF(t *testing.T) {
	got := runScript(t, "balance Alice\n")
	if len(got) != 1 || got[0] != "Account not found." {
		t.Fatalf("unexpected output at EOF: %v", got)
	}
}
