package core

import (
	"context"

	"tonwatch/internal/repository"
	"tonwatch/internal/tonindex"
	tokenIssuer "tonwatch/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveTransfer(ctx context.Context, transfer repository.Transfer) (bool, error)
	GetRecentTransfers(ctx context.Context, limit int) ([]repository.Transfer, error)
	GetFilteredTransfers(ctx context.Context, filter repository.TransferFilter) ([]repository.Transfer, error)
	MarkTransferProcessed(ctx context.Context, txHash string) error
	AccumulateUserBalance(ctx context.Context, userKey string, walletAddress *string, delta decimal.Decimal) error
	GetUserBalance(ctx context.Context, userKey string) (repository.UserBalance, error)
	GetStats(ctx context.Context) (repository.TransferStats, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name IndexClient . IndexClient
type IndexClient interface {
	GetTransactions(ctx context.Context, accountID string, limit int) ([]tonindex.Transfer, error)
	GetAccountInfo(ctx context.Context, accountID string) (tonindex.AccountInfo, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
