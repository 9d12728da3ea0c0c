// Package di exposes the pricing context's container tokens.
package di

import (
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
)

const (
	// PricingServiceToken resolves the PricingService.
	PricingServiceToken = "pricing.service"
	// TokenPairToken resolves the monitored token pair.
	TokenPairToken = "pricing.token_pair"
)

// GetPricingService resolves the PricingService from the registry.
func GetPricingService(c di.ServiceRegistry) *app.PricingService {
	return di.GetToken[*app.PricingService](c, PricingServiceToken)
}

// GetTokenPair resolves the monitored pair from the registry.
func GetTokenPair(c di.ServiceRegistry) domain.TokenPair {
	return di.GetToken[domain.TokenPair](c, TokenPairToken)
}
