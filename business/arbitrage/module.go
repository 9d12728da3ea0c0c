// Package arbitrage implements the arbitrage bounded context for opportunity detection.
package arbitrage

import (
	"context"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/app"
	arbitragedi "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	pricingdi "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/config"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/monolith"
)

// Module is the arbitrage bounded context. Reporter is chosen by the caller
// depending on run mode.
type Module struct {
	Reporter app.Reporter
}

// RegisterServices registers the evaluator, reporter and detector.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, arbitragedi.ReporterToken, func(sr di.ServiceRegistry) app.Reporter {
		return m.Reporter
	})

	di.RegisterToken(c, arbitragedi.EvaluatorToken, func(sr di.ServiceRegistry) *app.Evaluator {
		cfg := di.GetToken[*config.Config](sr, "config")
		calculator := app.NewProfitCalculator(
			cfg.Trade.AmountInDecimal(),
			cfg.Trade.GasCostEstimateDecimal(),
		)
		return app.NewEvaluator(calculator, cfg.Trade.ProfitThresholdDecimal())
	})

	di.RegisterToken(c, arbitragedi.DetectorToken, func(sr di.ServiceRegistry) *app.Detector {
		cfg := di.GetToken[*config.Config](sr, "config")
		log := di.GetToken[logger.LoggerInterface](sr, "logger")

		params := domain.TradeParameters{
			AmountIn:        cfg.Trade.AmountInDecimal(),
			GasCostEstimate: cfg.Trade.GasCostEstimateDecimal(),
			ProfitThreshold: cfg.Trade.ProfitThresholdDecimal(),
			PollInterval:    cfg.Trade.PollInterval,
		}

		detector, err := app.NewDetector(
			pricingdi.GetPricingService(sr),
			di.GetToken[*app.Evaluator](sr, arbitragedi.EvaluatorToken),
			arbitragedi.GetReporter(sr),
			pricingdi.GetTokenPair(sr),
			params,
			log,
		)
		if err != nil {
			panic("failed to create detector: " + err.Error())
		}
		return detector
	})

	return nil
}

// Startup resolves the detector so configuration problems surface before the
// loop begins.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	arbitragedi.GetDetector(mono.Services())

	mono.Logger().Info(ctx, "Arbitrage module started",
		"poll_interval", mono.Config().Trade.PollInterval.String())
	return nil
}
