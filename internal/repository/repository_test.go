package repository_test

import (
	"context"
	"errors"

	"tonwatch/internal/db"
	"tonwatch/internal/repository"
	"tonwatch/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("LedgerRepository", func() {
	var (
		repo        *repository.LedgerRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewLedgerRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx)
		})

		When("migration and seeding succeed", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
				fakeStorage.SaveToTableReturns(nil)
			})

			It("migrates all models and seeds the admin user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				Expect(fakeStorage.MigrateTableArgsForCall(0)).To(HaveLen(3))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, argRecords := fakeStorage.SaveToTableArgsForCall(0)
				users, ok := argRecords.(*[]repository.User)
				Expect(ok).To(BeTrue())
				Expect(*users).To(HaveLen(1))
				Expect((*users)[0].Username).To(Equal("admin"))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(0))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SaveTransfer", func() {
		var (
			transfer repository.Transfer
			wasNew   bool
			err      error
		)

		BeforeEach(func() {
			transfer = repository.Transfer{
				TxHash:    "abc123",
				AccountID: "EQWallet",
				AmountTon: decimal.RequireFromString("1.5"),
			}
		})

		JustBeforeEach(func() {
			wasNew, err = repo.SaveTransfer(ctx, transfer)
		})

		When("the hash is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreConflictReturns(true, nil)
			})

			It("inserts guarding on the hash column", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(wasNew).To(BeTrue())

				Expect(fakeStorage.InsertIgnoreConflictCallCount()).To(Equal(1))
				_, argColumn, argRecord := fakeStorage.InsertIgnoreConflictArgsForCall(0)
				Expect(argColumn).To(Equal("tx_hash"))
				Expect(argRecord.(*repository.Transfer).TxHash).To(Equal("abc123"))
			})
		})

		When("the hash already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreConflictReturns(false, nil)
			})

			It("reports not new without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(wasNew).To(BeFalse())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreConflictReturns(false, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFilteredTransfers", func() {
		var (
			filter repository.TransferFilter
			err    error
		)

		JustBeforeEach(func() {
			_, err = repo.GetFilteredTransfers(ctx, filter)
		})

		When("every filter is set", func() {
			BeforeEach(func() {
				minAmount := decimal.RequireFromString("0.5")
				maxAmount := decimal.RequireFromString("100")
				fromTime := int64(1700000000)
				toTime := int64(1700086400)
				filter = repository.TransferFilter{
					Limit:           25,
					MinAmount:       &minAmount,
					MaxAmount:       &maxAmount,
					SenderSubstring: "EQSen",
					FromTime:        &fromTime,
					ToTime:          &toTime,
				}
			})

			It("builds one condition per filter", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.FindWhereCallCount()).To(Equal(1))
				_, _, argQuery := fakeStorage.FindWhereArgsForCall(0)
				Expect(argQuery.Limit).To(Equal(25))
				Expect(argQuery.OrderBy).To(Equal("timestamp DESC"))
				Expect(argQuery.Conds).To(HaveLen(5))
				Expect(argQuery.Conds[2].Expr).To(Equal("sender_address LIKE ?"))
				Expect(argQuery.Conds[2].Value).To(Equal("%EQSen%"))
			})
		})

		When("no filters are set", func() {
			BeforeEach(func() {
				filter = repository.TransferFilter{Limit: 10}
			})

			It("queries without conditions", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, argQuery := fakeStorage.FindWhereArgsForCall(0)
				Expect(argQuery.Conds).To(BeEmpty())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.FindWhereReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("MarkTransferProcessed", func() {
		When("the transfer exists", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(nil)
			})

			It("flips the processed flag", func() {
				Expect(repo.MarkTransferProcessed(ctx, "abc123")).To(Succeed())

				_, _, argColumn, argValue, argUpdates := fakeStorage.UpdateColumnsArgsForCall(0)
				Expect(argColumn).To(Equal("tx_hash"))
				Expect(argValue).To(Equal("abc123"))
				Expect(argUpdates).To(HaveKeyWithValue("processed", true))
			})
		})

		When("the transfer is unknown", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(db.ErrNotFound)
			})

			It("should return transfer not found error", func() {
				Expect(repo.MarkTransferProcessed(ctx, "missing")).To(MatchError(repository.ErrTransferNotFound))
			})
		})
	})

	Describe("AccumulateUserBalance", func() {
		var (
			userKey string
			wallet  *string
			delta   decimal.Decimal
			err     error
		)

		BeforeEach(func() {
			userKey = "0000000"
			sender := "EQSender"
			wallet = &sender
			delta = decimal.RequireFromString("1.5")
		})

		JustBeforeEach(func() {
			err = repo.AccumulateUserBalance(ctx, userKey, wallet, delta)
		})

		When("no balance row exists yet", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("creates the row with the delta as initial balance", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
				_, argRecord := fakeStorage.CreateRecordArgsForCall(0)
				balance := argRecord.(*repository.UserBalance)
				Expect(balance.UserKey).To(Equal(userKey))
				Expect(balance.Balance.Equal(delta)).To(BeTrue())
				Expect(*balance.WalletAddress).To(Equal("EQSender"))

				Expect(fakeStorage.UpdateColumnsCallCount()).To(Equal(0))
			})
		})

		When("a balance row exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					balance := entity.(*repository.UserBalance)
					balance.UserKey = userKey
					balance.Balance = decimal.RequireFromString("2")
					return nil
				}
			})

			It("adds the delta to the stored balance", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(0))
				Expect(fakeStorage.UpdateColumnsCallCount()).To(Equal(1))

				_, _, argColumn, argValue, argUpdates := fakeStorage.UpdateColumnsArgsForCall(0)
				Expect(argColumn).To(Equal("user_key"))
				Expect(argValue).To(Equal(userKey))
				Expect(argUpdates["balance"].(decimal.Decimal).Equal(decimal.RequireFromString("3.5"))).To(BeTrue())
				Expect(argUpdates).To(HaveKeyWithValue("wallet_address", "EQSender"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserBalance", func() {
		When("the user has no row", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				_, err := repo.GetUserBalance(ctx, "0000000")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetStats", func() {
		When("aggregation succeeds", func() {
			BeforeEach(func() {
				fakeStorage.AggregateRowStub = func(ctx context.Context, model any, selectExpr string, dest any) error {
					stats := dest.(*repository.TransferStats)
					stats.TotalTransfers = 4
					stats.TotalAmount = decimal.RequireFromString("9.75")
					return nil
				}
			})

			It("returns the aggregate row", func() {
				stats, err := repo.GetStats(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.TotalTransfers).To(Equal(int64(4)))
				Expect(stats.TotalAmount.Equal(decimal.RequireFromString("9.75"))).To(BeTrue())

				_, _, argSelect, _ := fakeStorage.AggregateRowArgsForCall(0)
				Expect(argSelect).To(ContainSubstring("COALESCE(SUM(amount_ton), 0)"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					user := entity.(*repository.User)
					user.Username = "admin"
					return nil
				}
			})

			It("returns the user", func() {
				user, err := repo.GetUserByUsername(ctx, "admin")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("admin"))

				_, argColumn, argValue, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(argColumn).To(Equal("username"))
				Expect(argValue).To(Equal("admin"))
			})
		})

		When("the user is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				_, err := repo.GetUserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetTransferByHash", func() {
		When("the transfer is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return transfer not found error", func() {
				_, err := repo.GetTransferByHash(ctx, "missing")
				Expect(err).To(MatchError(repository.ErrTransferNotFound))
			})
		})
	})
})
