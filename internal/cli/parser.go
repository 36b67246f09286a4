package cli

import (
	"strconv"
	"strings"
)

type RequestKind string

const (
	RequestCreateAccount RequestKind = "create-account"
	RequestTransfer      RequestKind = "transfer"
	RequestBalance       RequestKind = "balance"
	RequestExit          RequestKind = "exit"
	RequestInvalid       RequestKind = "invalid"
)

// Request is one parsed command line. Only the fields relevant to Kind are
// populated.
type Request struct {
	Kind    RequestKind
	ID      string
	From    string
	To      string
	Amount  int64
	Balance int64
}

// Parse tokenizes one input line into a Request. Wrong argument counts and
// unknown commands map to RequestInvalid and never reach the ledger.
// Unparsable numbers are treated as 0, which the ledger rejects for
// transfer amounts.
func Parse(line string) Request {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Request{Kind: RequestInvalid}
	}

	switch tokens[0] {
	case "create-account":
		if len(tokens) != 3 {
			return Request{Kind: RequestInvalid}
		}
		return Request{
			Kind:    RequestCreateAccount,
			ID:      tokens[1],
			Balance: parseAmount(tokens[2]),
		}
	case "transfer":
		if len(tokens) != 4 {
			return Request{Kind: RequestInvalid}
		}
		return Request{
			Kind:   RequestTransfer,
			From:   tokens[1],
			To:     tokens[2],
			Amount: parseAmount(tokens[3]),
		}
	case "balance":
		if len(tokens) != 2 {
			return Request{Kind: RequestInvalid}
		}
		return Request{
			Kind: RequestBalance,
			ID:   tokens[1],
		}
	case "exit":
		if len(tokens) != 1 {
			return Request{Kind: RequestInvalid}
		}
		return Request{Kind: RequestExit}
	default:
		return Request{Kind: RequestInvalid}
	}
}

func parseAmount(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
