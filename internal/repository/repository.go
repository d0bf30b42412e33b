package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tonwatch/internal/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrTransferNotFound error = errors.New("transfer not found")

const statsSelectExpr = "COUNT(*) AS total_transfers, " +
	"COALESCE(SUM(amount_ton), 0) AS total_amount, " +
	"COUNT(CASE WHEN processed THEN 1 END) AS processed_count, " +
	"COUNT(CASE WHEN confirmed THEN 1 END) AS confirmed_count"

type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (r *LedgerRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(&Transfer{}, &UserBalance{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:       uuid.NewString(),
			Username: "admin",
			// bcrypt hash of the default operator password
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
		},
	}
	err = r.db.SaveToTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

// SaveTransfer inserts the transfer if its hash has not been stored yet.
// Reports whether the record was new; re-inserting an existing hash is a
// no-op, not an error.
func (r *LedgerRepository) SaveTransfer(ctx context.Context, transfer Transfer) (bool, error) {
	wasNew, err := r.db.InsertIgnoreConflict(ctx, "tx_hash", &transfer)
	if err != nil {
		return false, fmt.Errorf("save transfer: %w", err)
	}

	return wasNew, nil
}

func (r *LedgerRepository) GetRecentTransfers(ctx context.Context, limit int) ([]Transfer, error) {
	transfers := []Transfer{}
	err := r.db.FindWhere(ctx, &transfers, db.Query{
		OrderBy: "timestamp DESC",
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get recent transfers: %w", err)
	}

	return transfers, nil
}

func (r *LedgerRepository) GetFilteredTransfers(ctx context.Context, filter TransferFilter) ([]Transfer, error) {
	var conds []db.Cond
	if filter.MinAmount != nil {
		conds = append(conds, db.Cond{Expr: "amount_ton >= ?", Value: *filter.MinAmount})
	}
	if filter.MaxAmount != nil {
		conds = append(conds, db.Cond{Expr: "amount_ton <= ?", Value: *filter.MaxAmount})
	}
	if filter.SenderSubstring != "" {
		conds = append(conds, db.Cond{Expr: "sender_address LIKE ?", Value: "%" + filter.SenderSubstring + "%"})
	}
	if filter.FromTime != nil {
		conds = append(conds, db.Cond{Expr: "timestamp >= ?", Value: *filter.FromTime})
	}
	if filter.ToTime != nil {
		conds = append(conds, db.Cond{Expr: "timestamp <= ?", Value: *filter.ToTime})
	}

	transfers := []Transfer{}
	err := r.db.FindWhere(ctx, &transfers, db.Query{
		Conds:   conds,
		OrderBy: "timestamp DESC",
		Limit:   filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get filtered transfers: %w", err)
	}

	return transfers, nil
}

func (r *LedgerRepository) GetTransferByHash(ctx context.Context, txHash string) (Transfer, error) {
	var transfer Transfer
	err := r.db.GetOneBy(ctx, "tx_hash", txHash, &transfer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transfer{}, ErrTransferNotFound
		}
		return Transfer{}, fmt.Errorf("get transfer by hash: %w", err)
	}

	return transfer, nil
}

func (r *LedgerRepository) MarkTransferProcessed(ctx context.Context, txHash string) error {
	err := r.db.UpdateColumns(ctx, &Transfer{}, "tx_hash", txHash, map[string]any{
		"processed": true,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrTransferNotFound
		}
		return fmt.Errorf("mark transfer processed: %w", err)
	}

	return nil
}

// AccumulateUserBalance adds delta to the user's running balance,
// creating the balance row on first deposit.
func (r *LedgerRepository) AccumulateUserBalance(ctx context.Context, userKey string, walletAddress *string, delta decimal.Decimal) error {
	var existing UserBalance
	err := r.db.GetOneBy(ctx, "user_key", userKey, &existing)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("get user balance: %w", err)
		}

		balance := UserBalance{
			UserKey:       userKey,
			WalletAddress: walletAddress,
			Balance:       delta,
		}
		if err := r.db.CreateRecord(ctx, &balance); err != nil {
			return fmt.Errorf("create user balance: %w", err)
		}
		return nil
	}

	updates := map[string]any{
		"balance":    existing.Balance.Add(delta),
		"updated_at": time.Now(),
	}
	if walletAddress != nil {
		updates["wallet_address"] = *walletAddress
	}

	err = r.db.UpdateColumns(ctx, &UserBalance{}, "user_key", userKey, updates)
	if err != nil {
		return fmt.Errorf("update user balance: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetUserBalance(ctx context.Context, userKey string) (UserBalance, error) {
	var balance UserBalance
	err := r.db.GetOneBy(ctx, "user_key", userKey, &balance)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return UserBalance{}, ErrUserNotFound
		}
		return UserBalance{}, fmt.Errorf("get user balance: %w", err)
	}

	return balance, nil
}

func (r *LedgerRepository) GetStats(ctx context.Context) (TransferStats, error) {
	var stats TransferStats
	err := r.db.AggregateRow(ctx, &Transfer{}, statsSelectExpr, &stats)
	if err != nil {
		return TransferStats{}, fmt.Errorf("get transfer stats: %w", err)
	}

	return stats, nil
}

func (r *LedgerRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
