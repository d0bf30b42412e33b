package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transfer struct {
	ID            uint            `gorm:"primaryKey"`
	TxHash        string          `gorm:"size:64;uniqueIndex;not null"` // upstream-assigned, base64url
	AccountID     string          `gorm:"size:66;not null;index"`       // monitored wallet
	SenderAddress *string         `gorm:"size:66;index"`
	SenderName    *string         `gorm:"size:255"`
	AmountTon     decimal.Decimal `gorm:"type:numeric(27,9);not null"` // derived: amount_nano / 1e9
	AmountNano    int64           `gorm:"not null"`
	Message       *string         `gorm:"type:text"`
	Timestamp     int64           `gorm:"not null;index"` // upstream event time, unix seconds
	LogicalTime   *int64          // upstream ordering key (lt)
	Confirmed     bool            `gorm:"not null;default:false"`
	Processed     bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

type UserBalance struct {
	UserKey       string          `gorm:"primaryKey;size:64;autoIncrement:false"`
	WalletAddress *string         `gorm:"size:66"` // last-seen sender
	Balance       decimal.Decimal `gorm:"type:numeric(27,9);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// TransferFilter narrows GetFilteredTransfers results. Nil/zero fields
// are ignored.
type TransferFilter struct {
	Limit           int
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	SenderSubstring string
	FromTime        *int64
	ToTime          *int64
}

type TransferStats struct {
	TotalTransfers int64           `json:"total_transfers"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ProcessedCount int64           `json:"processed_count"`
	ConfirmedCount int64           `json:"confirmed_count"`
}
