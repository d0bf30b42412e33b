package core

import "github.com/shopspring/decimal"

// TransferRecord is the canonical unit of observed value movement, as
// exposed to the API layer and the deposit notifier.
type TransferRecord struct {
	Hash          string          `json:"tx_hash"`
	AccountID     string          `json:"account_id"`
	SenderAddress *string         `json:"sender_address"`
	SenderName    *string         `json:"sender_name"`
	AmountTon     decimal.Decimal `json:"amount_ton"`
	AmountNano    int64           `json:"amount_nanoton"`
	Message       *string         `json:"message"`
	Timestamp     int64           `json:"timestamp"`
	LogicalTime   *int64          `json:"logical_time"`
	Confirmed     bool            `json:"confirmed"`
	Processed     bool            `json:"processed"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WalletBalance is the monitored account's snapshot from the indexer.
type WalletBalance struct {
	BalanceTon  decimal.Decimal `json:"balance_ton"`
	BalanceNano int64           `json:"balance_nanoton"`
	Status      string          `json:"status"`
}
