package asset

import (
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// PricePrecision is the number of decimals used for fixed-point rates.
// 18 matches the native precision of most EVM tokens, so WETH rates
// round-trip without loss.
const PricePrecision = 18

var pricePrecisionMultiplier = new(big.Int).Exp(big.NewInt(10), big.NewInt(PricePrecision), nil)

// Price is an observed exchange rate between a base and a quote asset,
// stored as a fixed-point integer with PricePrecision decimals.
// A WETH/USDC rate of 2000.50 is stored as 2000500000000000000000.
type Price struct {
	rate      *big.Int
	base      *Asset
	quote     *Asset
	timestamp time.Time
}

// NewPrice builds a price from a decimal rate. The rate is how many
// units of quote one unit of base buys: for WETH/USDC at 2000.50,
// base=WETH, quote=USDC, rate=2000.50.
func NewPrice(base, quote *Asset, rate decimal.Decimal, timestamp time.Time) Price {
	if base == nil || quote == nil {
		panic("asset: nil base or quote in price")
	}
	if rate.IsNegative() {
		panic("asset: negative price rate")
	}

	return Price{
		rate:      rate.Shift(PricePrecision).BigInt(),
		base:      base,
		quote:     quote,
		timestamp: timestamp,
	}
}

// NewPriceFromBigInt builds a price from a raw fixed-point rate that
// already carries PricePrecision decimals.
func NewPriceFromBigInt(base, quote *Asset, rate *big.Int, timestamp time.Time) Price {
	if base == nil || quote == nil {
		panic("asset: nil base or quote in price")
	}
	if rate == nil {
		panic("asset: nil rate")
	}
	if rate.Sign() < 0 {
		panic("asset: negative price rate")
	}

	return Price{
		rate:      new(big.Int).Set(rate),
		base:      base,
		quote:     quote,
		timestamp: timestamp,
	}
}

// NewPriceNow builds a price stamped with the current time.
func NewPriceNow(base, quote *Asset, rate decimal.Decimal) Price {
	return NewPrice(base, quote, rate, time.Now())
}

// Rate returns the rate as a decimal.
func (p Price) Rate() decimal.Decimal {
	if p.rate == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(p.rate, -PricePrecision)
}

// RateRaw returns a copy of the raw fixed-point rate.
func (p Price) RateRaw() *big.Int {
	if p.rate == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.rate)
}

// Base returns the asset being priced.
func (p Price) Base() *Asset {
	return p.base
}

// Quote returns the asset the rate is expressed in.
func (p Price) Quote() *Asset {
	return p.quote
}

// Timestamp returns when this price was observed.
func (p Price) Timestamp() time.Time {
	return p.timestamp
}

// Pair returns the pair symbol, e.g. "WETH/USDC".
func (p Price) Pair() string {
	if p.base == nil || p.quote == nil {
		return "???/???"
	}
	return fmt.Sprintf("%s/%s", p.base.Symbol(), p.quote.Symbol())
}

// IsZero reports whether the rate is zero.
func (p Price) IsZero() bool {
	return p.rate == nil || p.rate.Sign() == 0
}

// Convert converts an amount of the base asset into the quote asset
// at this price. The result is expressed in the quote asset's smallest
// unit, so the decimal difference between the assets is folded in:
//
//	quoteRaw = baseRaw * rate / 10^PricePrecision * 10^(quoteDec - baseDec)
func (p Price) Convert(amount Amount) (Amount, error) {
	if amount.Asset() == nil {
		return Amount{}, ErrNilAsset
	}
	if !amount.Asset().ID().Equals(p.base.ID()) {
		return Amount{}, fmt.Errorf("%w: expected %s, got %s",
			ErrAssetMismatch, p.base.Symbol(), amount.Asset().Symbol())
	}

	out := new(big.Int).Mul(amount.Raw(), p.rate)
	out.Div(out, pricePrecisionMultiplier)

	shift := int64(p.quote.Decimals()) - int64(p.base.Decimals())
	if shift > 0 {
		out.Mul(out, new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil))
	} else if shift < 0 {
		out.Div(out, new(big.Int).Exp(big.NewInt(10), big.NewInt(-shift), nil))
	}

	return NewAmount(p.quote, out), nil
}

// String renders the price as "<rate> <pair>".
func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.Rate().String(), p.Pair())
}
