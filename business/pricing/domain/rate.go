package domain

import (
	"fmt"
	"math/big"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

// Rate is a venue's effective exchange rate for the pair at the sampled trade
// size, expressed as units of Out per one unit of In.
type Rate struct {
	Venue Venue
	Price asset.Price
}

// IsUsable reports whether the rate is nonzero. Venues quoting a zero rate
// are dropped from comparison rather than treated as a price of zero.
func (r Rate) IsUsable() bool {
	return !r.Price.IsZero()
}

// Normalize converts a raw quote into a decimal-aware exchange rate.
//
// Raw amounts live in each token's smallest unit, so the ratio is rescaled by
// the tokens' decimals before fixing the precision:
//
//	rate = (outRaw * 10^inDecimals) / (inRaw * 10^outDecimals)
//
// carried as an 18-decimal fixed-point integer. The division truncates toward
// zero, which understates rather than overstates the rate.
func Normalize(q Quote) (Rate, error) {
	inRaw := q.AmountIn.Raw()
	outRaw := q.AmountOut.Raw()

	if inRaw.Sign() <= 0 {
		return Rate{}, fmt.Errorf("cannot normalize quote with non-positive input amount")
	}

	inScale := pow10(q.Pair.In.Decimals())
	outScale := pow10(q.Pair.Out.Decimals())

	num := new(big.Int).Mul(outRaw, inScale)
	num.Mul(num, pricePrecision)
	den := new(big.Int).Mul(inRaw, outScale)

	fixed := num.Quo(num, den)

	return Rate{
		Venue: q.Venue,
		Price: asset.NewPriceFromBigInt(q.Pair.In, q.Pair.Out, fixed, q.Timestamp),
	}, nil
}

var pricePrecision = new(big.Int).Exp(big.NewInt(10), big.NewInt(asset.PricePrecision), nil)

func pow10(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}
