// Package app contains the pricing context's application services and ports.
package app

import (
	"context"
	"math/big"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

// QuoteSource fetches a spot quote from a single venue.
type QuoteSource interface {
	// Venue identifies the venue this source quotes from.
	Venue() domain.Venue

	// GetQuote asks the venue how much of pair.Out it would return for
	// amountIn of pair.In, in raw base units.
	GetQuote(ctx context.Context, pair domain.TokenPair, amountIn *big.Int) (domain.Quote, error)
}
