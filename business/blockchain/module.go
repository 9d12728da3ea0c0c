// Package blockchain wires Polygon node access for the rest of the application.
package blockchain

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/app"
	blockchaindi "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/infra/polygon"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/config"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/monolith"
)

// Module is the blockchain bounded context.
type Module struct{}

// RegisterServices registers the contract caller in the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, blockchaindi.ContractCallerToken, func(reg di.ServiceRegistry) app.ContractCaller {
		cfg := di.GetToken[*config.Config](reg, "config")
		log := di.GetToken[logger.LoggerInterface](reg, "logger")
		client := di.GetToken[*ethclient.Client](reg, "ethClient")

		caller, err := polygon.NewCaller(client, cfg.RPC, log)
		if err != nil {
			panic("failed to create polygon caller: " + err.Error())
		}
		return caller
	})
	return nil
}

// Startup verifies node connectivity. Ping failures are logged, not fatal:
// quote fetching retries every cycle anyway.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	caller := blockchaindi.GetContractCaller(mono.Services())

	if err := caller.Ping(ctx); err != nil {
		mono.Logger().Warn(ctx, "Polygon node ping failed, continuing anyway",
			"error", err.Error(),
			"chain_id", caller.ChainID())
		return nil
	}

	mono.Logger().Info(ctx, "Connected to Polygon node",
		"chain_id", caller.ChainID())
	return nil
}
