package notifier

import (
	"context"

	"tonwatch/internal/core"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransferService . TransferService
type TransferService interface {
	FetchIncoming(ctx context.Context, limit int) ([]core.TransferRecord, error)
	GetRecent(ctx context.Context, limit int) ([]core.TransferRecord, error)
	SaveTransfer(ctx context.Context, record core.TransferRecord) (bool, error)
	AccumulateUserBalance(ctx context.Context, userKey string, walletAddress *string, delta decimal.Decimal) error
}
