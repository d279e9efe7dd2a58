package logger

import "go.uber.org/zap"

// ShortID truncates identifiers so user ids never appear in full in logs
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}

// UserID returns a zap field carrying a shortened user id
func UserID(id string) zap.Field {
	return zap.String("user_id", ShortID(id))
}

// Wallet returns a zap field carrying a wallet address
func Wallet(address string) zap.Field {
	return zap.String("wallet_address", address)
}

// TxID returns a zap field carrying a provider transaction id
func TxID(id string) zap.Field {
	return zap.String("transaction_id", id)
}
