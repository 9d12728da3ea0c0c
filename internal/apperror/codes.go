package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration (fatal, startup only)
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Detector-specific error codes
const (
	// RPC transport errors
	CodeRPCConnectionFailed Code = "RPC_CONNECTION_FAILED"
	CodeRPCNetworkError     Code = "RPC_NETWORK_ERROR"
	CodeRPCTimeout          Code = "RPC_TIMEOUT"

	// Router quote errors
	CodeContractReverted  Code = "CONTRACT_REVERTED"
	CodeQuoteDecodeFailed Code = "QUOTE_DECODE_FAILED"
	CodeQuoteFailed       Code = "QUOTE_FAILED"

	// Detection errors
	CodeInvalidTradeSize      Code = "INVALID_TRADE_SIZE"
	CodeInsufficientLiquidity Code = "INSUFFICIENT_LIQUIDITY"
	CodeUnknownProtocol       Code = "UNKNOWN_PROTOCOL"

	// Circuit breaker / rate limit
	CodeCircuitOpen       Code = "CIRCUIT_OPEN"
	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"
)

// IsCycleRecoverable reports whether an error code describes a per-cycle fetch
// failure. Cycles failing with one of these codes are skipped and the scheduler
// keeps ticking; any other error during startup is fatal.
func IsCycleRecoverable(code Code) bool {
	switch code {
	case CodeRPCNetworkError, CodeRPCTimeout, CodeContractReverted,
		CodeQuoteDecodeFailed, CodeQuoteFailed, CodeInsufficientLiquidity,
		CodeCircuitOpen, CodeRateLimitExceeded:
		return true
	}
	return false
}
