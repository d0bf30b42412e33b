package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"tonwatch/internal/core"
	"tonwatch/internal/core/fake"
	"tonwatch/internal/repository"
	"tonwatch/internal/tonindex"
	tokenIssuer "tonwatch/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("TransferService", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeIndex  *fake.IndexClient
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		service *core.TransferService

		monitoredWallet string
		fakeErr         error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeIndex = new(fake.IndexClient)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		monitoredWallet = "EQWallet"
		service = core.NewTransferService(
			fakeLogger,
			fakeRepo,
			fakeJWT,
			fakeIndex,
			monitoredWallet,
			decimal.RequireFromString("0.01"))

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = "user-1"
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = service.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ValidateToken", func() {
		When("token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			})

			It("should accept the token", func() {
				Expect(service.ValidateToken("valid.token")).To(Succeed())
				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("valid.token"))
			})
		})

		When("token is rejected", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return the validation error", func() {
				Expect(service.ValidateToken("bad.token")).To(MatchError(fakeErr))
			})
		})
	})

	Describe("FetchIncoming", func() {
		var (
			records []core.TransferRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = service.FetchIncoming(ctx, 20)
		})

		When("the indexer returns mixed transfers", func() {
			BeforeEach(func() {
				fakeIndex.GetTransactionsReturns([]tonindex.Transfer{
					{Hash: "good", AccountID: monitoredWallet, SenderAddress: "EQSender", AmountNano: 1_500_000_000, Timestamp: 100},
					{Hash: "dust", AccountID: monitoredWallet, SenderAddress: "EQSender", AmountNano: 5_000_000, Timestamp: 101},
					{Hash: "senderless", AccountID: monitoredWallet, AmountNano: 2_000_000_000, Timestamp: 102},
					{Hash: "self", AccountID: monitoredWallet, SenderAddress: monitoredWallet, AmountNano: 3_000_000_000, Timestamp: 103},
				}, nil)
			})

			It("keeps only deposit candidates", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].Hash).To(Equal("good"))
				Expect(records[0].AmountTon.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
				Expect(records[0].SenderAddress).NotTo(BeNil())
				Expect(*records[0].SenderAddress).To(Equal("EQSender"))

				Expect(fakeIndex.GetTransactionsCallCount()).To(Equal(1))
				_, argAccount, argLimit := fakeIndex.GetTransactionsArgsForCall(0)
				Expect(argAccount).To(Equal(monitoredWallet))
				Expect(argLimit).To(Equal(20))
			})
		})

		When("the indexer is unreachable", func() {
			BeforeEach(func() {
				fakeIndex.GetTransactionsReturns(nil, fakeErr)
			})

			It("degrades to an empty page without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})
	})

	Describe("SyncNew", func() {
		var (
			fresh []core.TransferRecord
			err   error
		)

		BeforeEach(func() {
			fakeIndex.GetTransactionsReturns([]tonindex.Transfer{
				{Hash: "a", AccountID: monitoredWallet, SenderAddress: "EQSender", AmountNano: 1_000_000_000, Timestamp: 100},
				{Hash: "b", AccountID: monitoredWallet, SenderAddress: "EQSender", AmountNano: 2_000_000_000, Timestamp: 101},
			}, nil)
		})

		JustBeforeEach(func() {
			fresh, err = service.SyncNew(ctx, 10)
		})

		When("one record is already stored", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransferReturnsOnCall(0, true, nil)
				fakeRepo.SaveTransferReturnsOnCall(1, false, nil)
			})

			It("returns only the new record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fresh).To(HaveLen(1))
				Expect(fresh[0].Hash).To(Equal("a"))
				Expect(fakeRepo.SaveTransferCallCount()).To(Equal(2))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransferReturns(false, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fresh).To(BeNil())
			})
		})
	})

	Describe("MarkProcessed", func() {
		When("the transfer exists", func() {
			BeforeEach(func() {
				fakeRepo.MarkTransferProcessedReturns(nil)
			})

			It("marks it processed", func() {
				Expect(service.MarkProcessed(ctx, "abc")).To(Succeed())
				Expect(fakeRepo.MarkTransferProcessedCallCount()).To(Equal(1))
				_, argHash := fakeRepo.MarkTransferProcessedArgsForCall(0)
				Expect(argHash).To(Equal("abc"))
			})
		})

		When("the transfer is unknown", func() {
			BeforeEach(func() {
				fakeRepo.MarkTransferProcessedReturns(repository.ErrTransferNotFound)
			})

			It("should return transfer not found error", func() {
				Expect(service.MarkProcessed(ctx, "missing")).To(MatchError(core.ErrTransferNotFound))
			})
		})
	})

	Describe("GetUserBalance", func() {
		When("the user has no balance row", func() {
			BeforeEach(func() {
				fakeRepo.GetUserBalanceReturns(repository.UserBalance{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				_, err := service.GetUserBalance(ctx, "0000000")
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the balance exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserBalanceReturns(repository.UserBalance{
					UserKey: "0000000",
					Balance: decimal.RequireFromString("3.25"),
				}, nil)
			})

			It("returns the stored balance", func() {
				balance, err := service.GetUserBalance(ctx, "0000000")
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Balance.Equal(decimal.RequireFromString("3.25"))).To(BeTrue())
			})
		})
	})

	Describe("WalletBalance", func() {
		var (
			balance core.WalletBalance
			err     error
		)

		JustBeforeEach(func() {
			balance, err = service.WalletBalance(ctx)
		})

		When("the snapshot is available", func() {
			BeforeEach(func() {
				fakeIndex.GetAccountInfoReturns(tonindex.AccountInfo{
					Balance: json.Number("5000000000"),
					State:   "active",
				}, nil)
			})

			It("converts nanoton to TON", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.BalanceNano).To(Equal(int64(5_000_000_000)))
				Expect(balance.BalanceTon.Equal(decimal.RequireFromString("5"))).To(BeTrue())
				Expect(balance.Status).To(Equal("active"))

				_, argAccount := fakeIndex.GetAccountInfoArgsForCall(0)
				Expect(argAccount).To(Equal(monitoredWallet))
			})
		})

		When("the indexer is unreachable", func() {
			BeforeEach(func() {
				fakeIndex.GetAccountInfoReturns(tonindex.AccountInfo{}, fakeErr)
			})

			It("reports an unknown zero balance without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Status).To(Equal("unknown"))
				Expect(balance.BalanceTon.IsZero()).To(BeTrue())
			})
		})

		When("the balance is not a number", func() {
			BeforeEach(func() {
				fakeIndex.GetAccountInfoReturns(tonindex.AccountInfo{
					Balance: json.Number("not-a-number"),
					State:   "active",
				}, nil)
			})

			It("reports an unknown zero balance without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Status).To(Equal("unknown"))
			})
		})
	})

	Describe("Stats", func() {
		BeforeEach(func() {
			fakeRepo.GetStatsReturns(repository.TransferStats{
				TotalTransfers: 7,
				TotalAmount:    decimal.RequireFromString("12.5"),
				ProcessedCount: 3,
				ConfirmedCount: 6,
			}, nil)
		})

		It("passes the aggregate through", func() {
			stats, err := service.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalTransfers).To(Equal(int64(7)))
			Expect(stats.ProcessedCount).To(Equal(int64(3)))
		})
	})
})
