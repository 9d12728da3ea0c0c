// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	RPC       RPCConfig       `mapstructure:"rpc"`
	Tokens    TokensConfig    `mapstructure:"tokens"`
	Venues    []VenueConfig   `mapstructure:"venues"`
	Trade     TradeConfig     `mapstructure:"trade"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	TUIMode     bool   `mapstructure:"-"` // Set at runtime, not from config file
}

// RPCConfig holds Polygon node configuration.
type RPCConfig struct {
	HTTPURL           string        `mapstructure:"http_url"`
	ChainID           uint64        `mapstructure:"chain_id"`
	CallTimeout       time.Duration `mapstructure:"call_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// TokensConfig describes the monitored token pair.
// The trade buys TokenOut with TokenIn; profit is denominated in TokenOut.
type TokensConfig struct {
	InAddress   string `mapstructure:"in_address"`
	InSymbol    string `mapstructure:"in_symbol"`
	InDecimals  uint8  `mapstructure:"in_decimals"`
	OutAddress  string `mapstructure:"out_address"`
	OutSymbol   string `mapstructure:"out_symbol"`
	OutDecimals uint8  `mapstructure:"out_decimals"`
}

// InAddressHex returns the input token address as common.Address.
func (c *TokensConfig) InAddressHex() common.Address {
	return common.HexToAddress(c.InAddress)
}

// OutAddressHex returns the output token address as common.Address.
func (c *TokensConfig) OutAddressHex() common.Address {
	return common.HexToAddress(c.OutAddress)
}

// VenueConfig identifies one DEX pricing venue.
type VenueConfig struct {
	Name          string `mapstructure:"name"`
	RouterAddress string `mapstructure:"router_address"`
	Protocol      string `mapstructure:"protocol"`
}

// RouterAddressHex returns the router address as common.Address.
func (c *VenueConfig) RouterAddressHex() common.Address {
	return common.HexToAddress(c.RouterAddress)
}

// TradeConfig holds the simulated trade parameters.
type TradeConfig struct {
	// AmountIn is the fixed trade size in human units of the input token.
	AmountIn float64 `mapstructure:"amount_in"`
	// GasCostEstimate is a flat estimate in output-token units.
	GasCostEstimate float64 `mapstructure:"gas_cost_estimate"`
	// ProfitThreshold is the minimum net profit, in output-token units,
	// for an opportunity to be reported.
	ProfitThreshold float64 `mapstructure:"profit_threshold"`
	// PollInterval is the scheduler tick period.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// AmountInDecimal returns the trade size as decimal.Decimal.
func (c *TradeConfig) AmountInDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.AmountIn)
}

// GasCostEstimateDecimal returns the gas estimate as decimal.Decimal.
func (c *TradeConfig) GasCostEstimateDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.GasCostEstimate)
}

// ProfitThresholdDecimal returns the profit threshold as decimal.Decimal.
func (c *TradeConfig) ProfitThresholdDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.ProfitThreshold)
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("ARB")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	// Read config file (optional, env vars can carry everything)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperror.New(apperror.CodeConfigurationError,
				apperror.WithCause(err),
				apperror.WithContext("failed to read config file"))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperror.New(apperror.CodeConfigurationError,
			apperror.WithCause(err),
			apperror.WithContext("failed to unmarshal config"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "ARB_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "ARB_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "ARB_LOG_LEVEL", "LOG_LEVEL")

	// RPC
	v.BindEnv("rpc.http_url", "ARB_RPC_HTTP_URL", "POLYGON_RPC_URL")
	v.BindEnv("rpc.chain_id", "ARB_RPC_CHAIN_ID", "CHAIN_ID")

	// Tokens
	v.BindEnv("tokens.in_address", "ARB_TOKEN_IN")
	v.BindEnv("tokens.out_address", "ARB_TOKEN_OUT")

	// Trade
	v.BindEnv("trade.amount_in", "ARB_TRADE_AMOUNT")
	v.BindEnv("trade.gas_cost_estimate", "ARB_GAS_COST_ESTIMATE")
	v.BindEnv("trade.profit_threshold", "ARB_PROFIT_THRESHOLD")
	v.BindEnv("trade.poll_interval", "ARB_POLL_INTERVAL")

	// Telemetry
	v.BindEnv("telemetry.enabled", "ARB_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "ARB_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "ARB_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "polygon-arb-detector")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// RPC defaults
	v.SetDefault("rpc.chain_id", asset.ChainIDPolygon)
	v.SetDefault("rpc.call_timeout", "10s")
	v.SetDefault("rpc.requests_per_minute", 300)

	// Token pair defaults: WETH -> USDC on Polygon PoS
	v.SetDefault("tokens.in_address", asset.AddrWETHPolygon.Hex())
	v.SetDefault("tokens.in_symbol", "WETH")
	v.SetDefault("tokens.in_decimals", 18)
	v.SetDefault("tokens.out_address", asset.AddrUSDCPolygon.Hex())
	v.SetDefault("tokens.out_symbol", "USDC")
	v.SetDefault("tokens.out_decimals", 6)

	// Venue defaults: QuickSwap and SushiSwap V2 routers on Polygon
	v.SetDefault("venues", []map[string]any{
		{
			"name":           "QuickSwap",
			"router_address": "0xa5E0829CaCEd8fFDD4De3c43696c57F7D7A678ff",
			"protocol":       "univ2",
		},
		{
			"name":           "SushiSwap",
			"router_address": "0x1b02dA8Cb0d097eB8D57A175b88c7D8b47997506",
			"protocol":       "univ2",
		},
	})

	// Trade defaults
	v.SetDefault("trade.amount_in", 1.0)
	v.SetDefault("trade.gas_cost_estimate", 0.5)
	v.SetDefault("trade.profit_threshold", 5.0)
	v.SetDefault("trade.poll_interval", "30s")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "polygon-arb-detector")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration. Any failure here is fatal at startup.
func (c *Config) Validate() error {
	fail := func(msg string) error {
		return apperror.New(apperror.CodeConfigurationError, apperror.WithContext(msg))
	}

	if c.RPC.HTTPURL == "" {
		return fail("rpc.http_url is required")
	}
	if c.RPC.CallTimeout <= 0 {
		return fail("rpc.call_timeout must be positive")
	}

	if !common.IsHexAddress(c.Tokens.InAddress) {
		return fail(fmt.Sprintf("invalid tokens.in_address: %s", c.Tokens.InAddress))
	}
	if !common.IsHexAddress(c.Tokens.OutAddress) {
		return fail(fmt.Sprintf("invalid tokens.out_address: %s", c.Tokens.OutAddress))
	}
	if c.Tokens.InAddressHex() == c.Tokens.OutAddressHex() {
		return fail("tokens.in_address and tokens.out_address must differ")
	}
	if c.Tokens.InDecimals > 30 || c.Tokens.OutDecimals > 30 {
		return fail("token decimals out of range")
	}

	if len(c.Venues) < 2 {
		return fail("at least two venues are required")
	}
	seen := make(map[common.Address]bool, len(c.Venues))
	for i, venue := range c.Venues {
		if venue.Name == "" {
			return fail(fmt.Sprintf("venues[%d].name is required", i))
		}
		if !common.IsHexAddress(venue.RouterAddress) {
			return fail(fmt.Sprintf("invalid venues[%d].router_address: %s", i, venue.RouterAddress))
		}
		if seen[venue.RouterAddressHex()] {
			return fail(fmt.Sprintf("duplicate router address: %s", venue.RouterAddress))
		}
		seen[venue.RouterAddressHex()] = true
		switch venue.Protocol {
		case "univ2":
		default:
			return apperror.New(apperror.CodeUnknownProtocol,
				apperror.WithContext(fmt.Sprintf("venues[%d].protocol: %s", i, venue.Protocol)))
		}
	}

	if c.Trade.AmountIn <= 0 {
		return fail("trade.amount_in must be positive")
	}
	if c.Trade.GasCostEstimate < 0 {
		return fail("trade.gas_cost_estimate cannot be negative")
	}
	if c.Trade.PollInterval < time.Second {
		return fail("trade.poll_interval must be at least 1s")
	}

	return nil
}
