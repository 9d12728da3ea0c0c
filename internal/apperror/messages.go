package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// System errors
	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	// RPC transport errors
	CodeRPCConnectionFailed: "Failed to connect to RPC node",
	CodeRPCNetworkError:     "RPC transport error",
	CodeRPCTimeout:          "RPC call timed out",

	// Router quote errors
	CodeContractReverted:  "Router view call reverted",
	CodeQuoteDecodeFailed: "Failed to decode router quote",
	CodeQuoteFailed:       "Failed to get router quote",

	// Detection errors
	CodeInvalidTradeSize:      "Invalid trade size",
	CodeInsufficientLiquidity: "Insufficient liquidity for trade size",
	CodeUnknownProtocol:       "Unknown venue protocol",

	// Circuit breaker / rate limit
	CodeCircuitOpen:       "Circuit breaker is open",
	CodeRateLimitExceeded: "Rate limit exceeded",
}
