package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"tonwatch/internal/core"
	"tonwatch/internal/http/handler"
	"tonwatch/internal/http/handler/fake"
	"tonwatch/internal/notifier"
	"tonwatch/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("MonitorHandler", func() {
	var (
		mh            *handler.MonitorHandler
		fakeService   *fake.TransferService
		fakeMonitor   *fake.DepositMonitor
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.TransferService)
		fakeService.AuthenticateReturns(testToken, nil)
		fakeService.ValidateTokenReturns(nil)
		fakeMonitor = new(fake.DepositMonitor)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		mh = handler.NewMonitorHandler(fakeLogger, fakeValidator, fakeService, fakeMonitor)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"admin","password":"pass"}`)
			req = httptest.NewRequest("POST", "/ton/authenticate", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			mh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetTransactions", func() {
		JustBeforeEach(func() {
			mh.HandleGetTransactions(w, req)
		})

		When("no filters are given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/transactions", nil)
				fakeService.GetRecentReturns([]core.TransferRecord{
					{Hash: "abc", AmountTon: decimal.RequireFromString("1.5")},
				}, nil)
			})

			It("returns the recent page with the default limit", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"abc"`))

				Expect(fakeService.GetRecentCallCount()).To(Equal(1))
				Expect(fakeService.GetFilteredCallCount()).To(Equal(0))
				_, argLimit := fakeService.GetRecentArgsForCall(0)
				Expect(argLimit).To(Equal(10))
			})
		})

		When("filters are given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/transactions?limit=5&min_amount=0.5&sender_address=EQSen&from_date=2026-01-01&to_date=2026-01-31", nil)
				fakeService.GetFilteredReturns([]core.TransferRecord{}, nil)
			})

			It("builds the filter from the query", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.GetFilteredCallCount()).To(Equal(1))

				_, argFilter := fakeService.GetFilteredArgsForCall(0)
				Expect(argFilter.Limit).To(Equal(5))
				Expect(argFilter.MinAmount).NotTo(BeNil())
				Expect(argFilter.MinAmount.Equal(decimal.RequireFromString("0.5"))).To(BeTrue())
				Expect(argFilter.SenderSubstring).To(Equal("EQSen"))
				Expect(argFilter.FromTime).NotTo(BeNil())
				Expect(argFilter.ToTime).NotTo(BeNil())
				// bare to-date is extended to the end of the day
				Expect(*argFilter.ToTime - *argFilter.FromTime).To(Equal(int64(30*86400 + 86399)))
			})
		})

		When("a filter parameter is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/transactions?min_amount=abc", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetFilteredCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/transactions", nil)
				fakeService.GetRecentReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetWalletBalance", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/ton/balance", nil)
			fakeService.WalletBalanceReturns(core.WalletBalance{
				BalanceTon:  decimal.RequireFromString("5"),
				BalanceNano: 5_000_000_000,
				Status:      "active",
			}, nil)
		})

		It("returns the snapshot", func() {
			mh.HandleGetWalletBalance(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"active"`))
		})
	})

	Describe("HandleSync", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/ton/sync", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
			fakeService.SyncNewReturns([]core.TransferRecord{{Hash: "new-1"}}, nil)
		})

		JustBeforeEach(func() {
			mh.HandleSync(w, req)
		})

		When("the token is valid", func() {
			It("syncs with the default limit", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Found 1 new transactions"))

				Expect(fakeService.ValidateTokenCallCount()).To(Equal(1))
				Expect(fakeService.ValidateTokenArgsForCall(0)).To(Equal(testToken))

				Expect(fakeService.SyncNewCallCount()).To(Equal(1))
				_, argLimit := fakeService.SyncNewArgsForCall(0)
				Expect(argLimit).To(Equal(10))
			})
		})

		When("the auth token is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SyncNewCallCount()).To(Equal(0))
			})
		})

		When("the auth token is rejected", func() {
			BeforeEach(func() {
				fakeService.ValidateTokenReturns(fakeErr)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SyncNewCallCount()).To(Equal(0))
			})
		})

		When("syncing fails", func() {
			BeforeEach(func() {
				fakeService.SyncNewReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleMarkProcessed", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/ton/transactions/abc123/processed", nil)
			req.SetPathValue("hash", "abc123")
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			mh.HandleMarkProcessed(w, req)
		})

		When("the transfer exists", func() {
			It("marks it processed", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, argHash := fakeService.MarkProcessedArgsForCall(0)
				Expect(argHash).To(Equal("abc123"))
			})
		})

		When("the transfer is unknown", func() {
			BeforeEach(func() {
				fakeService.MarkProcessedReturns(core.ErrTransferNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetStats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/ton/stats", nil)
			fakeService.StatsReturns(repository.TransferStats{TotalTransfers: 12}, nil)
		})

		It("returns the aggregate", func() {
			mh.HandleGetStats(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"total_transfers":12`))
		})
	})

	Describe("monitor lifecycle", func() {
		BeforeEach(func() {
			fakeMonitor.StartReturns(notifier.Status{Running: true, MonitoredWallet: "EQWallet"})
			fakeMonitor.StopReturns(notifier.Status{Running: false, MonitoredWallet: "EQWallet"})
			fakeMonitor.StatusReturns(notifier.Status{Running: true, QueueDepth: 2})
		})

		It("starts the monitor when authorized", func() {
			req = httptest.NewRequest("POST", "/ton/monitor/start", nil)
			req.Header.Set("AUTH_TOKEN", testToken)

			mh.HandleMonitorStart(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeMonitor.StartCallCount()).To(Equal(1))
			Expect(w.Body.String()).To(ContainSubstring(`"is_running":true`))
		})

		It("refuses to start without a token", func() {
			req = httptest.NewRequest("POST", "/ton/monitor/start", nil)

			mh.HandleMonitorStart(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeMonitor.StartCallCount()).To(Equal(0))
		})

		It("stops the monitor when authorized", func() {
			req = httptest.NewRequest("POST", "/ton/monitor/stop", nil)
			req.Header.Set("AUTH_TOKEN", testToken)

			mh.HandleMonitorStop(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeMonitor.StopCallCount()).To(Equal(1))
		})

		It("reports status without a token", func() {
			req = httptest.NewRequest("GET", "/ton/monitor/status", nil)

			mh.HandleMonitorStatus(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"queue_size":2`))
		})
	})

	Describe("HandleNextDeposit", func() {
		JustBeforeEach(func() {
			mh.HandleNextDeposit(w, req)
		})

		When("a deposit arrives in time", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/deposits/next?timeout=5", nil)
				fakeMonitor.NextDepositReturns(notifier.DepositEvent{
					Hash:          "abc",
					WalletAddress: "EQSender",
					Amount:        decimal.RequireFromString("1.5"),
				}, true)
			})

			It("returns the deposit", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
				Expect(w.Body.String()).To(ContainSubstring(`"abc"`))

				Expect(fakeMonitor.NextDepositArgsForCall(0)).To(Equal(5 * time.Second))
			})
		})

		When("the wait times out", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/deposits/next", nil)
				fakeMonitor.NextDepositReturns(notifier.DepositEvent{}, false)
			})

			It("reports the timeout as a normal response", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"status":"timeout"`))
				Expect(w.Body.String()).To(ContainSubstring(`"deposit":null`))

				Expect(fakeMonitor.NextDepositArgsForCall(0)).To(Equal(30 * time.Second))
			})
		})

		When("the timeout parameter is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/ton/deposits/next?timeout=soon", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeMonitor.NextDepositCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLatestDeposits", func() {
		BeforeEach(func() {
			fakeMonitor.LatestDepositsReturns([]notifier.DepositEvent{
				{Hash: "d1"},
				{Hash: "d2"},
			})
		})

		It("returns the ring contents with count", func() {
			req = httptest.NewRequest("GET", "/ton/deposits/latest?limit=2", nil)

			mh.HandleLatestDeposits(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"count":2`))
			Expect(fakeMonitor.LatestDepositsArgsForCall(0)).To(Equal(2))
		})

		It("rejects a malformed limit", func() {
			req = httptest.NewRequest("GET", "/ton/deposits/latest?limit=-1", nil)

			mh.HandleLatestDeposits(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("HandleStreamDeposits", func() {
		var events chan notifier.DepositEvent

		BeforeEach(func() {
			events = make(chan notifier.DepositEvent, 1)
			fakeMonitor.SubscribeReturns(events, func() {})
		})

		It("writes subscribed events as SSE frames", func() {
			req = httptest.NewRequest("GET", "/ton/deposits/stream", nil)

			events <- notifier.DepositEvent{Hash: "streamed", WalletAddress: "EQSender"}
			close(events) // ends the stream after the buffered event

			mh.HandleStreamDeposits(w, req)

			Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))
			Expect(w.Body.String()).To(ContainSubstring("event: deposit"))
			Expect(w.Body.String()).To(ContainSubstring(`"streamed"`))
			Expect(fakeMonitor.SubscribeCallCount()).To(Equal(1))
		})
	})
})
