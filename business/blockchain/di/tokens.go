// Package di exposes the blockchain context's container tokens.
package di

import (
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
)

const (
	// ContractCallerToken resolves the shared ContractCaller.
	ContractCallerToken = "blockchain.contract_caller"
)

// GetContractCaller resolves the ContractCaller from the registry.
func GetContractCaller(c di.ServiceRegistry) app.ContractCaller {
	return di.GetToken[app.ContractCaller](c, ContractCallerToken)
}
