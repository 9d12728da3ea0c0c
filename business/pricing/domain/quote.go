package domain

import (
	"fmt"
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

// Quote is a raw router answer: for AmountIn of pair.In, the router would
// return AmountOut of pair.Out at observation time.
type Quote struct {
	Venue     Venue
	Pair      TokenPair
	AmountIn  asset.Amount
	AmountOut asset.Amount
	Timestamp time.Time
}

// NewQuote builds a quote after checking the amounts match the pair's legs.
func NewQuote(venue Venue, pair TokenPair, amountIn, amountOut asset.Amount, ts time.Time) (Quote, error) {
	if amountIn.Asset() == nil || amountIn.Asset().ID() != pair.In.ID() {
		return Quote{}, fmt.Errorf("quote input amount asset does not match pair %s", pair)
	}
	if amountOut.Asset() == nil || amountOut.Asset().ID() != pair.Out.ID() {
		return Quote{}, fmt.Errorf("quote output amount asset does not match pair %s", pair)
	}
	if !amountIn.IsPositive() {
		return Quote{}, fmt.Errorf("quote input amount must be positive")
	}
	return Quote{
		Venue:     venue,
		Pair:      pair,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		Timestamp: ts,
	}, nil
}

// IsUsable reports whether the quote carries a nonzero output. A zero output
// means the venue has no effective liquidity for this size and must be
// excluded from comparison.
func (q Quote) IsUsable() bool {
	return q.AmountOut.IsPositive()
}

func (q Quote) String() string {
	return fmt.Sprintf("%s: %s -> %s", q.Venue.Name, q.AmountIn, q.AmountOut)
}
