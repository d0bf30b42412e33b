package notifier_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"tonwatch/internal/core"
	"tonwatch/internal/notifier"
	"tonwatch/internal/notifier/fake"
	"tonwatch/internal/observability"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func strPtr(s string) *string {
	return &s
}

func deposit(hash, sender string, amountTon string) core.TransferRecord {
	return core.TransferRecord{
		Hash:          hash,
		AccountID:     "EQWallet",
		SenderAddress: strPtr(sender),
		AmountTon:     decimal.RequireFromString(amountTon),
		Timestamp:     time.Now().Unix(),
	}
}

var _ = Describe("Notifier", func() {
	var (
		fakeService *fake.TransferService
		fakeLogger  *zap.SugaredLogger
		metrics     *observability.Metrics
		cfg         notifier.Config

		monitor *notifier.Notifier

		fakeErr error
	)

	BeforeEach(func() {
		fakeService = new(fake.TransferService)
		fakeLogger = zap.NewNop().Sugar()
		metrics = observability.NewMetrics(prometheus.NewRegistry())

		cfg = notifier.Config{
			MonitoredWallet: "EQWallet",
			CheckInterval:   10 * time.Millisecond,
			DefaultUserKey:  "0000000",
		}

		fakeErr = errors.New("fake error")
	})

	AfterEach(func() {
		if monitor != nil {
			monitor.Stop()
		}
	})

	newMonitor := func() *notifier.Notifier {
		monitor = notifier.New(fakeLogger, fakeService, metrics, cfg)
		return monitor
	}

	Describe("New", func() {
		When("stored history exists", func() {
			BeforeEach(func() {
				fakeService.GetRecentReturns([]core.TransferRecord{
					deposit("old-1", "EQSender", "1"),
					deposit("old-2", "EQSender", "2"),
				}, nil)
			})

			It("seeds the processed set from storage", func() {
				status := newMonitor().Status()
				Expect(status.ProcessedTransfers).To(Equal(2))
				Expect(status.Running).To(BeFalse())

				_, argLimit := fakeService.GetRecentArgsForCall(0)
				Expect(argLimit).To(Equal(100))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeService.GetRecentReturns(nil, fakeErr)
			})

			It("starts with an empty processed set", func() {
				Expect(newMonitor().Status().ProcessedTransfers).To(Equal(0))
			})
		})
	})

	Describe("Start and Stop", func() {
		BeforeEach(func() {
			newMonitor()
		})

		It("reports running only between start and stop", func() {
			Expect(monitor.Status().Running).To(BeFalse())

			Expect(monitor.Start().Running).To(BeTrue())
			Expect(monitor.Start().Running).To(BeTrue()) // second start is a no-op

			Expect(monitor.Stop().Running).To(BeFalse())
			Expect(monitor.Stop().Running).To(BeFalse()) // second stop is a no-op
		})

		It("polls on the configured interval", func() {
			monitor.Start()
			Eventually(fakeService.FetchIncomingCallCount).Should(BeNumerically(">=", 2))
			monitor.Stop()

			calls := fakeService.FetchIncomingCallCount()
			Consistently(fakeService.FetchIncomingCallCount, 50*time.Millisecond).Should(Equal(calls))
		})
	})

	Describe("deposit detection", func() {
		When("a new transfer arrives", func() {
			var (
				callbackMu     sync.Mutex
				callbackEvents []notifier.DepositEvent
				streamed       <-chan notifier.DepositEvent
				cancelStream   func()
			)

			BeforeEach(func() {
				callbackEvents = nil
				fakeService.FetchIncomingReturns([]core.TransferRecord{
					deposit("fresh", "EQSender", "1.5"),
				}, nil)
				fakeService.SaveTransferReturns(true, nil)

				newMonitor()
				monitor.RegisterCallback(func(event notifier.DepositEvent) {
					callbackMu.Lock()
					defer callbackMu.Unlock()
					callbackEvents = append(callbackEvents, event)
				})
				streamed, cancelStream = monitor.Subscribe()
				monitor.Start()
			})

			AfterEach(func() {
				cancelStream()
			})

			It("announces the deposit to every sink exactly once", func() {
				event, ok := monitor.NextDeposit(time.Second)
				Expect(ok).To(BeTrue())
				Expect(event.Hash).To(Equal("fresh"))
				Expect(event.WalletAddress).To(Equal("EQSender"))
				Expect(event.Amount.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())

				Eventually(func() []notifier.DepositEvent {
					callbackMu.Lock()
					defer callbackMu.Unlock()
					return append([]notifier.DepositEvent(nil), callbackEvents...)
				}).Should(HaveLen(1))

				Eventually(streamed).Should(Receive())

				latest := monitor.LatestDeposits(10)
				Expect(latest).To(HaveLen(1))
				Expect(latest[0].Hash).To(Equal("fresh"))

				// the same transfer keeps arriving from the indexer but is
				// persisted and announced only once
				Eventually(fakeService.FetchIncomingCallCount).Should(BeNumerically(">=", 3))
				Expect(fakeService.SaveTransferCallCount()).To(Equal(1))

				_, ok = monitor.NextDeposit(20 * time.Millisecond)
				Expect(ok).To(BeFalse())
			})

			It("credits the default user with the deposit amount", func() {
				Eventually(fakeService.AccumulateUserBalanceCallCount).Should(Equal(1))

				_, argUserKey, argWallet, argDelta := fakeService.AccumulateUserBalanceArgsForCall(0)
				Expect(argUserKey).To(Equal("0000000"))
				Expect(*argWallet).To(Equal("EQSender"))
				Expect(argDelta.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
			})
		})

		When("the transfer was seeded from storage", func() {
			BeforeEach(func() {
				fakeService.GetRecentReturns([]core.TransferRecord{
					deposit("known", "EQSender", "1"),
				}, nil)
				fakeService.FetchIncomingReturns([]core.TransferRecord{
					deposit("known", "EQSender", "1"),
				}, nil)

				newMonitor().Start()
			})

			It("does not re-announce it", func() {
				Eventually(fakeService.FetchIncomingCallCount).Should(BeNumerically(">=", 2))
				Expect(fakeService.SaveTransferCallCount()).To(Equal(0))

				_, ok := monitor.NextDeposit(20 * time.Millisecond)
				Expect(ok).To(BeFalse())
			})
		})

		When("the transfer is senderless or sent by the monitored wallet", func() {
			BeforeEach(func() {
				selfTransfer := deposit("self", "EQWallet", "2")
				senderless := core.TransferRecord{Hash: "senderless", AccountID: "EQWallet", AmountTon: decimal.RequireFromString("3")}
				fakeService.FetchIncomingReturns([]core.TransferRecord{selfTransfer, senderless}, nil)

				newMonitor().Start()
			})

			It("ignores both without persisting", func() {
				Eventually(fakeService.FetchIncomingCallCount).Should(BeNumerically(">=", 2))
				Expect(fakeService.SaveTransferCallCount()).To(Equal(0))

				_, ok := monitor.NextDeposit(20 * time.Millisecond)
				Expect(ok).To(BeFalse())
			})
		})

		When("the store is already holding the transfer", func() {
			BeforeEach(func() {
				fakeService.FetchIncomingReturns([]core.TransferRecord{
					deposit("stored", "EQSender", "1"),
				}, nil)
				fakeService.SaveTransferReturns(false, nil)

				newMonitor().Start()
			})

			It("remembers it without announcing or crediting", func() {
				Eventually(fakeService.SaveTransferCallCount).Should(Equal(1))
				Eventually(func() int { return monitor.Status().ProcessedTransfers }).Should(Equal(1))

				// later ticks skip it before reaching the store
				Eventually(fakeService.FetchIncomingCallCount).Should(BeNumerically(">=", 3))
				Expect(fakeService.SaveTransferCallCount()).To(Equal(1))
				Expect(fakeService.AccumulateUserBalanceCallCount()).To(Equal(0))

				_, ok := monitor.NextDeposit(20 * time.Millisecond)
				Expect(ok).To(BeFalse())
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeService.FetchIncomingReturns([]core.TransferRecord{
					deposit("retry-me", "EQSender", "1"),
				}, nil)
				fakeService.SaveTransferReturnsOnCall(0, false, fakeErr)
				fakeService.SaveTransferReturnsOnCall(1, true, nil)

				newMonitor().Start()
			})

			It("retries the transfer on the next tick", func() {
				event, ok := monitor.NextDeposit(time.Second)
				Expect(ok).To(BeTrue())
				Expect(event.Hash).To(Equal("retry-me"))
				Expect(fakeService.SaveTransferCallCount()).To(Equal(2))
			})
		})

		When("crediting the balance fails", func() {
			BeforeEach(func() {
				fakeService.FetchIncomingReturns([]core.TransferRecord{
					deposit("persisted", "EQSender", "1"),
				}, nil)
				fakeService.SaveTransferReturns(true, nil)
				fakeService.AccumulateUserBalanceReturns(fakeErr)

				newMonitor().Start()
			})

			It("still announces the persisted deposit", func() {
				event, ok := monitor.NextDeposit(time.Second)
				Expect(ok).To(BeTrue())
				Expect(event.Hash).To(Equal("persisted"))
			})
		})

		When("a registered callback panics", func() {
			BeforeEach(func() {
				fakeService.FetchIncomingReturns([]core.TransferRecord{
					deposit("survivor", "EQSender", "1"),
				}, nil)
				fakeService.SaveTransferReturns(true, nil)

				newMonitor()
				monitor.RegisterCallback(func(notifier.DepositEvent) {
					panic("callback boom")
				})
				monitor.Start()
			})

			It("keeps the poll loop alive", func() {
				event, ok := monitor.NextDeposit(time.Second)
				Expect(ok).To(BeTrue())
				Expect(event.Hash).To(Equal("survivor"))

				Eventually(fakeService.FetchIncomingCallCount).Should(BeNumerically(">=", 3))
			})
		})
	})

	Describe("NextDeposit", func() {
		BeforeEach(func() {
			newMonitor()
		})

		It("returns false once the timeout elapses with no deposits", func() {
			start := time.Now()
			_, ok := monitor.NextDeposit(30 * time.Millisecond)
			Expect(ok).To(BeFalse())
			Expect(time.Since(start)).To(BeNumerically(">=", 30*time.Millisecond))
		})
	})

	Describe("LatestDeposits", func() {
		BeforeEach(func() {
			cfg.HistorySize = 3

			transfers := make([]core.TransferRecord, 0, 5)
			for _, hash := range []string{"d1", "d2", "d3", "d4", "d5"} {
				transfers = append(transfers, deposit(hash, "EQSender", "1"))
			}
			fakeService.FetchIncomingReturns(transfers, nil)
			fakeService.SaveTransferReturns(true, nil)

			newMonitor().Start()
		})

		It("keeps only the most recent events, oldest first", func() {
			Eventually(func() int { return monitor.Status().LatestDepositsCount }).Should(Equal(3))
			monitor.Stop()

			latest := monitor.LatestDeposits(10)
			Expect(latest).To(HaveLen(3))
			Expect(latest[0].Hash).To(Equal("d3"))
			Expect(latest[1].Hash).To(Equal("d4"))
			Expect(latest[2].Hash).To(Equal("d5"))

			Expect(monitor.LatestDeposits(2)).To(HaveLen(2))
		})
	})

	Describe("UnregisterCallback", func() {
		BeforeEach(func() {
			newMonitor()
		})

		It("removes a callback by its id", func() {
			id := monitor.RegisterCallback(func(notifier.DepositEvent) {})
			Expect(monitor.Status().CallbacksRegistered).To(Equal(1))

			Expect(monitor.UnregisterCallback(id)).To(BeTrue())
			Expect(monitor.Status().CallbacksRegistered).To(Equal(0))

			Expect(monitor.UnregisterCallback(id)).To(BeFalse())
		})
	})

	Describe("Subscribe", func() {
		BeforeEach(func() {
			fakeService.FetchIncomingReturns([]core.TransferRecord{
				deposit("streamed", "EQSender", "1"),
			}, nil)
			fakeService.SaveTransferReturns(true, nil)

			newMonitor()
		})

		It("stops delivering after cancel", func() {
			events, cancel := monitor.Subscribe()

			monitor.Start()
			var received notifier.DepositEvent
			Eventually(events).Should(Receive(&received))
			Expect(received.Hash).To(Equal("streamed"))

			cancel()
			Eventually(events).Should(BeClosed())
		})
	})

	Describe("Status", func() {
		BeforeEach(func() {
			cfg.CheckInterval = 10 * time.Second
			newMonitor()
		})

		It("describes the monitor configuration", func() {
			status := monitor.Status()
			Expect(status.MonitoredWallet).To(Equal("EQWallet"))
			Expect(status.CheckIntervalSecs).To(Equal(10))
			Expect(status.QueueDepth).To(Equal(0))
		})
	})
})

var _ = Describe("Notifier shutdown", func() {
	It("interrupts a tick in flight", func() {
		fakeService := new(fake.TransferService)
		blockRelease := make(chan struct{})
		fakeService.FetchIncomingStub = func(ctx context.Context, limit int) ([]core.TransferRecord, error) {
			select {
			case <-ctx.Done():
			case <-blockRelease:
			}
			return nil, ctx.Err()
		}

		monitor := notifier.New(
			zap.NewNop().Sugar(),
			fakeService,
			observability.NewMetrics(prometheus.NewRegistry()),
			notifier.Config{MonitoredWallet: "EQWallet", CheckInterval: time.Hour, DefaultUserKey: "0000000"})

		monitor.Start()
		Eventually(fakeService.FetchIncomingCallCount).Should(Equal(1))

		done := make(chan notifier.Status, 1)
		go func() {
			done <- monitor.Stop()
		}()

		var status notifier.Status
		Eventually(done, 2*time.Second).Should(Receive(&status))
		Expect(status.Running).To(BeFalse())
		close(blockRelease)
	})
})
