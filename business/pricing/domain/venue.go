package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Protocol identifies the on-chain quoting mechanism a venue speaks.
type Protocol string

const (
	// ProtocolUniswapV2 covers Uniswap-V2-compatible routers (QuickSwap,
	// SushiSwap and other forks sharing the getAmountsOut ABI).
	ProtocolUniswapV2 Protocol = "univ2"
)

// ParseProtocol validates a protocol string from configuration.
func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case ProtocolUniswapV2:
		return ProtocolUniswapV2, nil
	default:
		return "", fmt.Errorf("unknown venue protocol: %q", s)
	}
}

// Venue is one DEX the detector samples prices from.
type Venue struct {
	Name     string
	Router   common.Address
	Protocol Protocol
}

func (v Venue) String() string {
	return v.Name
}
