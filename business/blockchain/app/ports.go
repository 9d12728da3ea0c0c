// Package app contains application ports for the blockchain context.
package app

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// ContractCaller is the read-only on-chain call capability supplied to quote
// adapters. Implementations own transport concerns (timeouts, rate limiting,
// circuit breaking); callers only see decoded bytes or a classified error.
type ContractCaller interface {
	// CallContract executes a view call against the contract at `to` with the
	// given ABI-encoded calldata and returns the raw return data.
	CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// ChainID returns the configured chain ID.
	ChainID() uint64

	// Ping verifies node connectivity.
	Ping(ctx context.Context) error
}
