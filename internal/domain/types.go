package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// WalletKind represents the address family of a wallet
type WalletKind string

const (
	WalletKindEVM     WalletKind = "evm"
	WalletKindSolana  WalletKind = "solana"
	WalletKindUnknown WalletKind = "unknown"
)

// ClassifyWallet returns the address family of a wallet address.
// Solana addresses are base58 encoded 32 byte public keys.
func ClassifyWallet(address string) WalletKind {
	address = strings.TrimSpace(address)
	if address == "" {
		return WalletKindUnknown
	}
	if common.IsHexAddress(address) {
		return WalletKindEVM
	}
	if decoded, err := base58.Decode(address); err == nil && len(decoded) == 32 {
		return WalletKindSolana
	}
	return WalletKindUnknown
}

// NormalizeWallet trims surrounding whitespace from a wallet address.
// The address is otherwise kept verbatim since ownership records are matched
// by exact string comparison.
func NormalizeWallet(address string) string {
	return strings.TrimSpace(address)
}

// NormalizeOptionalWallet normalizes an optional wallet address, mapping blank values to nil
func NormalizeOptionalWallet(address *string) *string {
	if address == nil {
		return nil
	}
	normalized := NormalizeWallet(*address)
	if normalized == "" {
		return nil
	}
	return &normalized
}

// EqualOptional reports whether two optional strings hold the same value.
// Two absent values are equal.
func EqualOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// StringOrEmpty dereferences an optional string
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
