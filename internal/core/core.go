package core

import (
	"context"
	"errors"
	"fmt"

	"tonwatch/internal/repository"
	"tonwatch/internal/tonindex"
	tokenIssuer "tonwatch/pkg/jwt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrTransferNotFound error = errors.New("transfer not found")

var nanotonPerTon = decimal.New(1, 9)

// TransferService owns the read/write operations over observed transfers:
// fetching fresh pages from the indexer, persisting them and serving the
// stored history. The deposit notifier drives it through FetchIncoming,
// SaveTransfer and AccumulateUserBalance.
type TransferService struct {
	logs            *zap.SugaredLogger
	repo            Repository
	jwtIssuer       JWTIssuer
	index           IndexClient
	monitoredWallet string
	minAmountTon    decimal.Decimal
}

func NewTransferService(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	index IndexClient,
	monitoredWallet string,
	minAmountTon decimal.Decimal,
) *TransferService {
	return &TransferService{
		logs:            logger,
		repo:            repo,
		jwtIssuer:       jwt,
		index:           index,
		monitoredWallet: monitoredWallet,
		minAmountTon:    minAmountTon,
	}
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (s *TransferService) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks an API token issued by Authenticate.
func (s *TransferService) ValidateToken(token string) error {
	if _, err := s.jwtIssuer.Validate(token); err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}
	return nil
}

// FetchIncoming fetches up to limit classified transfers from the indexer
// and keeps only genuine deposit candidates: at or above the minimum
// amount, with a sender, and not sent by the monitored account itself.
// Upstream failures degrade to an empty page so one bad poll never halts
// monitoring.
func (s *TransferService) FetchIncoming(ctx context.Context, limit int) ([]TransferRecord, error) {
	transfers, err := s.index.GetTransactions(ctx, s.monitoredWallet, limit)
	if err != nil {
		s.logs.Warnw("upstream fetch failed, continuing with empty page", "error", err)
		return []TransferRecord{}, nil
	}

	records := make([]TransferRecord, 0, len(transfers))
	for _, transfer := range transfers {
		record := s.recordFromIndex(transfer)

		if record.AmountTon.LessThan(s.minAmountTon) {
			s.logs.Debugw("skipping sub-threshold transfer", "hash", record.Hash, "amount_ton", record.AmountTon)
			continue
		}
		if record.SenderAddress == nil || *record.SenderAddress == s.monitoredWallet {
			s.logs.Debugw("skipping non-incoming transfer", "hash", record.Hash)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// SyncNew fetches a page from the indexer and persists it, returning only
// the genuinely new records.
func (s *TransferService) SyncNew(ctx context.Context, limit int) ([]TransferRecord, error) {
	candidates, err := s.FetchIncoming(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch incoming transfers: %w", err)
	}

	fresh := make([]TransferRecord, 0, len(candidates))
	for _, record := range candidates {
		wasNew, err := s.SaveTransfer(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("save transfer %q: %w", record.Hash, err)
		}
		if wasNew {
			fresh = append(fresh, record)
		}
	}

	s.logs.Infow("manual sync finished", "fetched", len(candidates), "new", len(fresh))

	return fresh, nil
}

// SaveTransfer persists the record idempotently by hash and reports
// whether it was new.
func (s *TransferService) SaveTransfer(ctx context.Context, record TransferRecord) (bool, error) {
	wasNew, err := s.repo.SaveTransfer(ctx, repoFromRecord(record))
	if err != nil {
		return false, fmt.Errorf("repo save transfer: %w", err)
	}

	return wasNew, nil
}

// AccumulateUserBalance adds delta TON to the attributed user's balance.
func (s *TransferService) AccumulateUserBalance(ctx context.Context, userKey string, walletAddress *string, delta decimal.Decimal) error {
	if err := s.repo.AccumulateUserBalance(ctx, userKey, walletAddress, delta); err != nil {
		return fmt.Errorf("accumulate user balance: %w", err)
	}
	return nil
}

func (s *TransferService) GetUserBalance(ctx context.Context, userKey string) (repository.UserBalance, error) {
	balance, err := s.repo.GetUserBalance(ctx, userKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.UserBalance{}, ErrUserNotFound
		}
		return repository.UserBalance{}, fmt.Errorf("get user balance: %w", err)
	}
	return balance, nil
}

func (s *TransferService) GetRecent(ctx context.Context, limit int) ([]TransferRecord, error) {
	transfers, err := s.repo.GetRecentTransfers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent transfers: %w", err)
	}

	return recordsFromRepo(transfers), nil
}

func (s *TransferService) GetFiltered(ctx context.Context, filter repository.TransferFilter) ([]TransferRecord, error) {
	transfers, err := s.repo.GetFilteredTransfers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get filtered transfers: %w", err)
	}

	return recordsFromRepo(transfers), nil
}

func (s *TransferService) MarkProcessed(ctx context.Context, txHash string) error {
	err := s.repo.MarkTransferProcessed(ctx, txHash)
	if err != nil {
		if errors.Is(err, repository.ErrTransferNotFound) {
			return ErrTransferNotFound
		}
		return fmt.Errorf("mark transfer processed: %w", err)
	}

	return nil
}

func (s *TransferService) Stats(ctx context.Context) (repository.TransferStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return repository.TransferStats{}, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}

// WalletBalance returns the monitored account's snapshot. An unreachable
// indexer yields a zero balance with status "unknown", not an error.
func (s *TransferService) WalletBalance(ctx context.Context) (WalletBalance, error) {
	info, err := s.index.GetAccountInfo(ctx, s.monitoredWallet)
	if err != nil {
		s.logs.Warnw("account snapshot unavailable", "error", err)
		return WalletBalance{BalanceTon: decimal.Zero, Status: "unknown"}, nil
	}

	nano, err := info.Balance.Int64()
	if err != nil {
		s.logs.Warnw("unparseable account balance", "balance", info.Balance, "error", err)
		return WalletBalance{BalanceTon: decimal.Zero, Status: "unknown"}, nil
	}

	return WalletBalance{
		BalanceTon:  decimal.NewFromInt(nano).Div(nanotonPerTon),
		BalanceNano: nano,
		Status:      info.State,
	}, nil
}

func (s *TransferService) recordFromIndex(transfer tonindex.Transfer) TransferRecord {
	record := TransferRecord{
		Hash:        transfer.Hash,
		AccountID:   transfer.AccountID,
		AmountTon:   decimal.NewFromInt(transfer.AmountNano).Div(nanotonPerTon),
		AmountNano:  transfer.AmountNano,
		Timestamp:   transfer.Timestamp,
		LogicalTime: transfer.LogicalTime,
		Confirmed:   transfer.Confirmed,
	}
	if transfer.SenderAddress != "" {
		sender := transfer.SenderAddress
		record.SenderAddress = &sender
	}
	if transfer.Message != "" {
		message := transfer.Message
		record.Message = &message
	}
	return record
}

func repoFromRecord(record TransferRecord) repository.Transfer {
	return repository.Transfer{
		TxHash:        record.Hash,
		AccountID:     record.AccountID,
		SenderAddress: record.SenderAddress,
		SenderName:    record.SenderName,
		AmountTon:     record.AmountTon,
		AmountNano:    record.AmountNano,
		Message:       record.Message,
		Timestamp:     record.Timestamp,
		LogicalTime:   record.LogicalTime,
		Confirmed:     record.Confirmed,
		Processed:     record.Processed,
	}
}

func recordsFromRepo(transfers []repository.Transfer) []TransferRecord {
	records := make([]TransferRecord, len(transfers))
	for i, transfer := range transfers {
		records[i] = TransferRecord{
			Hash:          transfer.TxHash,
			AccountID:     transfer.AccountID,
			SenderAddress: transfer.SenderAddress,
			SenderName:    transfer.SenderName,
			AmountTon:     transfer.AmountTon,
			AmountNano:    transfer.AmountNano,
			Message:       transfer.Message,
			Timestamp:     transfer.Timestamp,
			LogicalTime:   transfer.LogicalTime,
			Confirmed:     transfer.Confirmed,
			Processed:     transfer.Processed,
		}
	}
	return records
}
