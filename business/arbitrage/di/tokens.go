// Package di exposes the arbitrage context's container tokens.
package di

import (
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
)

const (
	// DetectorToken resolves the detection loop.
	DetectorToken = "arbitrage.detector"
	// EvaluatorToken resolves the opportunity evaluator.
	EvaluatorToken = "arbitrage.evaluator"
	// ReporterToken resolves the configured reporter.
	ReporterToken = "arbitrage.reporter"
)

// GetDetector resolves the Detector from the registry.
func GetDetector(c di.ServiceRegistry) *app.Detector {
	return di.GetToken[*app.Detector](c, DetectorToken)
}

// GetReporter resolves the Reporter from the registry.
func GetReporter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken[app.Reporter](c, ReporterToken)
}
