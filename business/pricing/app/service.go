package app

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
)

// PricingService samples the monitored pair across all configured venues.
type PricingService struct {
	sources []QuoteSource
	logger  logger.LoggerInterface
}

// NewPricingService creates a PricingService over the given quote sources.
func NewPricingService(sources []QuoteSource, log logger.LoggerInterface) *PricingService {
	return &PricingService{
		sources: sources,
		logger:  log,
	}
}

// Venues returns the venues this service samples, in configuration order.
func (s *PricingService) Venues() []domain.Venue {
	venues := make([]domain.Venue, len(s.sources))
	for i, src := range s.sources {
		venues[i] = src.Venue()
	}
	return venues
}

// FetchQuotes queries every venue concurrently for the same pair and size and
// waits for all of them. Results keep source order. Any failure cancels the
// remaining fetches and fails the whole call, so a cycle is either complete
// or skipped.
func (s *PricingService) FetchQuotes(ctx context.Context, pair domain.TokenPair, amountIn *big.Int) ([]domain.Quote, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, apperror.New(apperror.CodeInvalidTradeSize)
	}

	quotes := make([]domain.Quote, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			q, err := src.GetQuote(gctx, pair, amountIn)
			if err != nil {
				s.logger.Warn(gctx, "Quote fetch failed",
					"venue", src.Venue().Name,
					"pair", pair.String(),
					"error", err.Error())
				return err
			}
			quotes[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return quotes, nil
}

// NormalizeAll converts raw quotes into effective exchange rates.
func (s *PricingService) NormalizeAll(quotes []domain.Quote) ([]domain.Rate, error) {
	rates := make([]domain.Rate, len(quotes))
	for i, q := range quotes {
		r, err := domain.Normalize(q)
		if err != nil {
			return nil, apperror.New(apperror.CodeQuoteDecodeFailed,
				apperror.WithCause(err),
				apperror.WithContext(q.Venue.Name))
		}
		rates[i] = r
	}
	return rates, nil
}
