package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/ledger"
	"github.com/shopspring/decimal"
)

// Runner reads one command per line, invokes the ledger and renders the
// outcome. It shares the ledger with the confirmation scheduler.
type Runner struct {
	ledger *ledger.Ledger
	in     *bufio.Scanner
	out    io.Writer
}

func NewRunner(l *ledger.Ledger, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		ledger: l,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops until an exit command or end of input. Every ledger outcome is
// rendered and the loop continues; nothing here is fatal.
func (r *Runner) Run() {
	for r.in.Scan() {
		req := Parse(r.in.Text())
		if req.Kind == RequestExit {
			fmt.Fprintln(r.out, "Bye.")
			return
		}
		fmt.Fprintln(r.out, r.dispatch(req))
	}
}

func (r *Runner) dispatch(req Request) string {
	switch req.Kind {
	case RequestCreateAccount:
		err := r.ledger.CreateAccount(req.ID, decimal.NewFromInt(req.Balance))
		if errors.Is(err, ledger.ErrAccountExists) {
			return "Account already exists!"
		}
		return fmt.Sprintf("Account created successfully with id: %s", req.ID)
	case RequestTransfer:
		return renderTransfer(r.ledger.Submit(req.From, req.To, decimal.NewFromInt(req.Amount)))
	case RequestBalance:
		balance, err := r.ledger.Balance(req.ID)
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return "Account not found."
		}
		return fmt.Sprintf("Balance of %s: %s", req.ID, balance.String())
	default:
		return "Invalid command."
	}
}

func renderTransfer(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Transfer amount must be positive."
	case errors.Is(err, ledger.ErrAccountNotFound):
		return "One or both accounts not found."
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Insufficient funds."
	case err != nil:
		return "Transfer failed."
	default:
		return "Transfer queued for confirmation."
	}
}
