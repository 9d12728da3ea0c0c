package config

import (
	"testing"
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{Name: "test", LogLevel: "info"},
		RPC: RPCConfig{
			HTTPURL:           "https://polygon-rpc.com",
			ChainID:           137,
			CallTimeout:       10 * time.Second,
			RequestsPerMinute: 300,
		},
		Tokens: TokensConfig{
			InAddress:   "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619",
			InSymbol:    "WETH",
			InDecimals:  18,
			OutAddress:  "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
			OutSymbol:   "USDC",
			OutDecimals: 6,
		},
		Venues: []VenueConfig{
			{Name: "QuickSwap", RouterAddress: "0xa5E0829CaCEd8fFDD4De3c43696c57F7D7A678ff", Protocol: "univ2"},
			{Name: "SushiSwap", RouterAddress: "0x1b02dA8Cb0d097eB8D57A175b88c7D8b47997506", Protocol: "univ2"},
		},
		Trade: TradeConfig{
			AmountIn:        1.0,
			GasCostEstimate: 0.5,
			ProfitThreshold: 5.0,
			PollInterval:    30 * time.Second,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantCode apperror.Code
	}{
		{
			name:     "missing_rpc_url",
			mutate:   func(c *Config) { c.RPC.HTTPURL = "" },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "zero_call_timeout",
			mutate:   func(c *Config) { c.RPC.CallTimeout = 0 },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "bad_token_address",
			mutate:   func(c *Config) { c.Tokens.InAddress = "not-an-address" },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "same_token_both_sides",
			mutate:   func(c *Config) { c.Tokens.OutAddress = c.Tokens.InAddress },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "single_venue",
			mutate:   func(c *Config) { c.Venues = c.Venues[:1] },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "duplicate_routers",
			mutate:   func(c *Config) { c.Venues[1].RouterAddress = c.Venues[0].RouterAddress },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "unknown_protocol",
			mutate:   func(c *Config) { c.Venues[0].Protocol = "univ3" },
			wantCode: apperror.CodeUnknownProtocol,
		},
		{
			name:     "non_positive_trade_amount",
			mutate:   func(c *Config) { c.Trade.AmountIn = 0 },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "negative_gas_estimate",
			mutate:   func(c *Config) { c.Trade.GasCostEstimate = -1 },
			wantCode: apperror.CodeConfigurationError,
		},
		{
			name:     "sub_second_poll_interval",
			mutate:   func(c *Config) { c.Trade.PollInterval = 100 * time.Millisecond },
			wantCode: apperror.CodeConfigurationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := apperror.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestLoad_DefaultsFromEnvOnly(t *testing.T) {
	t.Setenv("POLYGON_RPC_URL", "https://polygon-rpc.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Trade.PollInterval != 30*time.Second {
		t.Errorf("poll interval = %s, want 30s", cfg.Trade.PollInterval)
	}
	if len(cfg.Venues) != 2 {
		t.Fatalf("venues = %d, want 2", len(cfg.Venues))
	}
	if cfg.Venues[0].Protocol != "univ2" {
		t.Errorf("protocol = %s, want univ2", cfg.Venues[0].Protocol)
	}
	if cfg.Tokens.OutDecimals != 6 {
		t.Errorf("out decimals = %d, want 6", cfg.Tokens.OutDecimals)
	}
}
