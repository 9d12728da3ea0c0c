// Package domain holds the pricing context's core types: token pairs, venues,
// raw quotes and normalized rates.
package domain

import (
	"fmt"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

// TokenPair is an ordered pair of tokens: quotes price In in units of Out.
type TokenPair struct {
	In  *asset.Asset
	Out *asset.Asset
}

// NewTokenPair creates a pair after checking both legs are present and distinct.
func NewTokenPair(in, out *asset.Asset) (TokenPair, error) {
	if in == nil || out == nil {
		return TokenPair{}, fmt.Errorf("token pair requires both legs")
	}
	if in.ID() == out.ID() {
		return TokenPair{}, fmt.Errorf("token pair legs must differ: %s", in.Symbol())
	}
	return TokenPair{In: in, Out: out}, nil
}

// String returns the pair in IN/OUT notation.
func (p TokenPair) String() string {
	return fmt.Sprintf("%s/%s", p.In.Symbol(), p.Out.Symbol())
}
