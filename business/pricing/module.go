// Package pricing wires venue quote sources and the pricing service.
package pricing

import (
	"context"
	"fmt"

	blockchaindi "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/app"
	pricingdi "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/infra/univ2"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/config"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/monolith"
)

// Module is the pricing bounded context.
type Module struct{}

// RegisterServices registers the monitored pair and the pricing service.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, pricingdi.TokenPairToken, func(sr di.ServiceRegistry) domain.TokenPair {
		cfg := di.GetToken[*config.Config](sr, "config")
		registry := di.GetToken[*asset.Registry](sr, "assetRegistry")

		in, ok := registry.GetToken(cfg.RPC.ChainID, cfg.Tokens.InAddressHex())
		if !ok {
			panic("input token not registered: " + cfg.Tokens.InAddress)
		}
		out, ok := registry.GetToken(cfg.RPC.ChainID, cfg.Tokens.OutAddressHex())
		if !ok {
			panic("output token not registered: " + cfg.Tokens.OutAddress)
		}

		pair, err := domain.NewTokenPair(in, out)
		if err != nil {
			panic("invalid token pair: " + err.Error())
		}
		return pair
	})

	di.RegisterToken(c, pricingdi.PricingServiceToken, func(sr di.ServiceRegistry) *app.PricingService {
		cfg := di.GetToken[*config.Config](sr, "config")
		log := di.GetToken[logger.LoggerInterface](sr, "logger")
		caller := blockchaindi.GetContractCaller(sr)

		sources := make([]app.QuoteSource, 0, len(cfg.Venues))
		for _, vc := range cfg.Venues {
			protocol, err := domain.ParseProtocol(vc.Protocol)
			if err != nil {
				panic(err.Error())
			}

			venue := domain.Venue{
				Name:     vc.Name,
				Router:   vc.RouterAddressHex(),
				Protocol: protocol,
			}

			switch protocol {
			case domain.ProtocolUniswapV2:
				src, err := univ2.NewAdapter(caller, venue, log)
				if err != nil {
					panic(fmt.Sprintf("failed to create %s adapter: %v", vc.Name, err))
				}
				sources = append(sources, src)
			default:
				panic("no adapter for protocol: " + string(protocol))
			}
		}

		return app.NewPricingService(sources, log)
	})

	return nil
}

// Startup logs the venues being monitored.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	svc := pricingdi.GetPricingService(mono.Services())
	pair := pricingdi.GetTokenPair(mono.Services())

	venues := svc.Venues()
	names := make([]string, len(venues))
	for i, v := range venues {
		names[i] = v.Name
	}

	mono.Logger().Info(ctx, "Pricing module started",
		"pair", pair.String(),
		"venues", names)
	return nil
}
