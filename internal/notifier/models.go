package notifier

import "github.com/shopspring/decimal"

// DepositEvent is the ephemeral notification derived from a newly
// detected incoming transfer. It is created exactly once per hash and
// only observable through the sinks.
type DepositEvent struct {
	WalletAddress string          `json:"wallet_address"`
	Hash          string          `json:"hash"`
	Timestamp     string          `json:"timestamp"`
	Amount        decimal.Decimal `json:"amount"`
	DetectedAt    string          `json:"detected_at"`
}

type Status struct {
	Running             bool            `json:"is_running"`
	CheckIntervalSecs   int             `json:"check_interval"`
	ProcessedTransfers  int             `json:"processed_transactions"`
	MonitoredWallet     string          `json:"monitored_wallet"`
	MinAmountTon        decimal.Decimal `json:"min_amount_ton"`
	CallbacksRegistered int             `json:"callbacks_registered"`
	QueueDepth          int             `json:"queue_size"`
	LatestDepositsCount int             `json:"latest_deposits_count"`
}
