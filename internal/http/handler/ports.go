package handler

import (
	"context"
	"net/http"
	"time"

	"tonwatch/internal/core"
	"tonwatch/internal/notifier"
	"tonwatch/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TransferService . TransferService
type TransferService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) error
	SyncNew(ctx context.Context, limit int) ([]core.TransferRecord, error)
	GetRecent(ctx context.Context, limit int) ([]core.TransferRecord, error)
	GetFiltered(ctx context.Context, filter repository.TransferFilter) ([]core.TransferRecord, error)
	MarkProcessed(ctx context.Context, txHash string) error
	Stats(ctx context.Context) (repository.TransferStats, error)
	WalletBalance(ctx context.Context) (core.WalletBalance, error)
}

//counterfeiter:generate -o fake -fake-name DepositMonitor . DepositMonitor
type DepositMonitor interface {
	Start() notifier.Status
	Stop() notifier.Status
	Status() notifier.Status
	NextDeposit(timeout time.Duration) (notifier.DepositEvent, bool)
	LatestDeposits(limit int) []notifier.DepositEvent
	Subscribe() (<-chan notifier.DepositEvent, func())
}
