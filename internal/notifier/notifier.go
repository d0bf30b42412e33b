package notifier

import (
	"context"
	"sync"
	"time"

	"tonwatch/internal/core"
	"tonwatch/internal/observability"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultFetchLimit  = 20
	defaultSeedLimit   = 100
	defaultHistorySize = 50
	stopJoinTimeout    = 5 * time.Second
	subscriberBuffer   = 16
)

const eventTimeLayout = "2006-01-02 15:04:05"

// Callback receives every new deposit event, in registration order.
type Callback func(DepositEvent)

type Config struct {
	MonitoredWallet string
	CheckInterval   time.Duration
	DefaultUserKey  string
	MinAmountTon    decimal.Decimal
	FetchLimit      int
	SeedLimit       int
	HistorySize     int
}

func (c Config) withDefaults() Config {
	if c.FetchLimit <= 0 {
		c.FetchLimit = defaultFetchLimit
	}
	if c.SeedLimit <= 0 {
		c.SeedLimit = defaultSeedLimit
	}
	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}
	return c
}

type registeredCallback struct {
	id int
	fn Callback
}

// Notifier is the deposit detector: it polls the transfer service on a
// fixed interval, persists genuinely new incoming transfers, accumulates
// the attributed user balance and fans the resulting DepositEvent out to
// the blocking queue, the bounded history ring, the registered callbacks
// and the live subscribers, in that order.
type Notifier struct {
	logs    *zap.SugaredLogger
	service TransferService
	metrics *observability.Metrics
	cfg     Config

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	seenMu sync.Mutex
	seen   map[string]struct{}

	queue *depositQueue
	ring  *depositRing

	cbMu      sync.RWMutex
	nextCbID  int
	callbacks []registeredCallback

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]chan DepositEvent
}

// New builds a stopped notifier and seeds its seen-set from the most
// recent stored transfers so a process restart does not re-announce
// history as new.
func New(logger *zap.SugaredLogger, service TransferService, metrics *observability.Metrics, cfg Config) *Notifier {
	n := &Notifier{
		logs:        logger,
		service:     service,
		metrics:     metrics,
		cfg:         cfg.withDefaults(),
		seen:        make(map[string]struct{}),
		queue:       newDepositQueue(),
		subscribers: make(map[int]chan DepositEvent),
	}
	n.ring = newDepositRing(n.cfg.HistorySize)

	n.seedSeen()

	return n
}

func (n *Notifier) seedSeen() {
	recent, err := n.service.GetRecent(context.Background(), n.cfg.SeedLimit)
	if err != nil {
		n.logs.Warnw("could not seed seen transfers", "error", err)
		return
	}

	for _, record := range recent {
		n.seen[record.Hash] = struct{}{}
	}

	n.logs.Infow("seeded seen transfers", "count", len(n.seen))
}

// Start launches the poll loop. Starting an already-running notifier is a
// no-op that reports the current status.
func (n *Notifier) Start() Status {
	n.mu.Lock()
	if n.running {
		n.mu.Unlock()
		n.logs.Warnw("deposit monitor already running")
		return n.Status()
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.done = make(chan struct{})
	n.running = true
	n.mu.Unlock()

	n.logs.Infow("starting deposit monitor",
		"wallet", n.cfg.MonitoredWallet,
		"check_interval", n.cfg.CheckInterval,
		"fetch_limit", n.cfg.FetchLimit)

	go n.run(ctx, n.done)

	return n.Status()
}

// Stop cancels the poll loop and waits up to a bounded join timeout for
// it to exit. Stopping an already-stopped notifier is a reported no-op.
func (n *Notifier) Stop() Status {
	n.mu.Lock()
	if !n.running {
		n.mu.Unlock()
		n.logs.Warnw("deposit monitor not running")
		return n.Status()
	}
	cancel := n.cancel
	done := n.done
	n.running = false
	n.mu.Unlock()

	cancel()

	select {
	case <-done:
		n.logs.Infow("deposit monitor stopped")
	case <-time.After(stopJoinTimeout):
		// best-effort join; the loop exits at its next tick boundary
		n.logs.Warnw("deposit monitor stop timed out waiting for loop exit")
	}

	return n.Status()
}

func (n *Notifier) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(n.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		n.checkForDeposits(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// checkForDeposits runs one tick. Nothing raised in here propagates out
// of the loop: a failing tick logs and yields to the next one.
func (n *Notifier) checkForDeposits(ctx context.Context) {
	n.metrics.PollTicks.Inc()

	candidates, err := n.service.FetchIncoming(ctx, n.cfg.FetchLimit)
	if err != nil {
		n.metrics.PollErrors.Inc()
		n.logs.Errorw("fetching deposit candidates", "error", err)
		return
	}

	for _, record := range candidates {
		if n.isSeen(record.Hash) {
			n.metrics.CandidatesSkipped.WithLabelValues("seen").Inc()
			continue
		}
		if record.SenderAddress == nil || *record.SenderAddress == n.cfg.MonitoredWallet {
			n.metrics.CandidatesSkipped.WithLabelValues("self").Inc()
			n.logs.Debugw("skipping self or senderless transfer", "hash", record.Hash)
			continue
		}

		wasNew, err := n.service.SaveTransfer(ctx, record)
		if err != nil {
			// abort the tick: this and the remaining candidates were
			// never marked seen, the next tick refetches them
			n.metrics.PollErrors.Inc()
			n.logs.Errorw("persisting transfer, aborting tick", "hash", record.Hash, "error", err)
			return
		}

		if !wasNew {
			// already stored in some earlier process lifetime, past the
			// seeded window; remember it, announce nothing
			n.markSeen(record.Hash)
			n.metrics.CandidatesSkipped.WithLabelValues("stored").Inc()
			n.logs.Debugw("transfer already stored, not re-announcing", "hash", record.Hash)
			continue
		}

		if err := n.service.AccumulateUserBalance(ctx, n.cfg.DefaultUserKey, record.SenderAddress, record.AmountTon); err != nil {
			// the transfer is persisted, so we are committed to the
			// event; the missed delta is logged rather than retried
			n.metrics.PollErrors.Inc()
			n.logs.Errorw("accumulating user balance", "hash", record.Hash, "error", err)
		}

		event := n.newDepositEvent(record)
		n.markSeen(record.Hash)
		n.dispatch(event)

		n.logs.Infow("new deposit detected",
			"amount_ton", event.Amount,
			"sender", event.WalletAddress,
			"hash", event.Hash)
	}
}

func (n *Notifier) newDepositEvent(record core.TransferRecord) DepositEvent {
	return DepositEvent{
		WalletAddress: *record.SenderAddress,
		Hash:          record.Hash,
		Timestamp:     time.Unix(record.Timestamp, 0).UTC().Format(eventTimeLayout),
		Amount:        record.AmountTon,
		DetectedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// dispatch fans one event out to every sink: queue, ring, callbacks,
// stream subscribers.
func (n *Notifier) dispatch(event DepositEvent) {
	n.queue.Push(event)
	n.ring.Append(event)
	n.invokeCallbacks(event)
	n.broadcast(event)

	n.metrics.DepositsDetected.Inc()
	n.metrics.DepositAmountTon.Observe(event.Amount.InexactFloat64())
	n.metrics.QueueDepth.Set(float64(n.queue.Len()))
}

func (n *Notifier) invokeCallbacks(event DepositEvent) {
	n.cbMu.RLock()
	callbacks := make([]registeredCallback, len(n.callbacks))
	copy(callbacks, n.callbacks)
	n.cbMu.RUnlock()

	for _, cb := range callbacks {
		n.invokeCallback(cb, event)
	}
}

func (n *Notifier) invokeCallback(cb registeredCallback, event DepositEvent) {
	defer func() {
		if r := recover(); r != nil {
			n.logs.Errorw("deposit callback panicked", "callback_id", cb.id, "panic", r)
		}
	}()

	cb.fn(event)
}

func (n *Notifier) broadcast(event DepositEvent) {
	n.subMu.Lock()
	defer n.subMu.Unlock()

	for id, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			// slow subscriber loses the event rather than stalling the tick
			n.logs.Warnw("dropping deposit event for slow subscriber", "subscriber_id", id)
		}
	}
}

// NextDeposit blocks the caller until an event arrives or the timeout
// elapses. The second return reports whether an event was delivered.
func (n *Notifier) NextDeposit(timeout time.Duration) (DepositEvent, bool) {
	event, ok := n.queue.Pop(timeout)
	n.metrics.QueueDepth.Set(float64(n.queue.Len()))
	return event, ok
}

// LatestDeposits returns up to limit of the most recent events, oldest
// first.
func (n *Notifier) LatestDeposits(limit int) []DepositEvent {
	return n.ring.Latest(limit)
}

// RegisterCallback adds a handler and returns its id for unregistering.
func (n *Notifier) RegisterCallback(cb Callback) int {
	n.cbMu.Lock()
	defer n.cbMu.Unlock()

	n.nextCbID++
	n.callbacks = append(n.callbacks, registeredCallback{id: n.nextCbID, fn: cb})
	return n.nextCbID
}

// UnregisterCallback removes a handler by id, reporting whether it was
// registered.
func (n *Notifier) UnregisterCallback(id int) bool {
	n.cbMu.Lock()
	defer n.cbMu.Unlock()

	for i, cb := range n.callbacks {
		if cb.id == id {
			n.callbacks = append(n.callbacks[:i], n.callbacks[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribe registers a live event channel. The returned cancel func must
// be called when the consumer goes away.
func (n *Notifier) Subscribe() (<-chan DepositEvent, func()) {
	n.subMu.Lock()
	defer n.subMu.Unlock()

	n.nextSubID++
	id := n.nextSubID
	ch := make(chan DepositEvent, subscriberBuffer)
	n.subscribers[id] = ch

	cancel := func() {
		n.subMu.Lock()
		defer n.subMu.Unlock()
		if _, ok := n.subscribers[id]; ok {
			delete(n.subscribers, id)
			close(ch)
		}
	}

	return ch, cancel
}

func (n *Notifier) Status() Status {
	n.mu.Lock()
	running := n.running
	n.mu.Unlock()

	n.seenMu.Lock()
	seenCount := len(n.seen)
	n.seenMu.Unlock()

	n.cbMu.RLock()
	callbackCount := len(n.callbacks)
	n.cbMu.RUnlock()

	return Status{
		Running:             running,
		CheckIntervalSecs:   int(n.cfg.CheckInterval / time.Second),
		ProcessedTransfers:  seenCount,
		MonitoredWallet:     n.cfg.MonitoredWallet,
		MinAmountTon:        n.cfg.MinAmountTon,
		CallbacksRegistered: callbackCount,
		QueueDepth:          n.queue.Len(),
		LatestDepositsCount: n.ring.Len(),
	}
}

func (n *Notifier) isSeen(hash string) bool {
	n.seenMu.Lock()
	defer n.seenMu.Unlock()
	_, ok := n.seen[hash]
	return ok
}

func (n *Notifier) markSeen(hash string) {
	n.seenMu.Lock()
	defer n.seenMu.Unlock()
	n.seen[hash] = struct{}{}
}
