package wallet

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
)

// DefaultPollInterval is how often balances are refreshed.
const DefaultPollInterval = 10 * time.Second

// BalanceUpdate is one balance reading. Err is set when the reading failed;
// the previous balance should then be treated as unknown.
type BalanceUpdate struct {
	Identity string
	SOL      float64
	Err      error
	At       time.Time
}

// Poller refreshes the balance of one identity at a fixed interval.
// Starting a new watch cancels the previous one, and readings from a
// cancelled watch are never delivered.
type Poller struct {
	source   BalanceSource
	onUpdate func(BalanceUpdate)
	clock    clock.Clock
	interval time.Duration
	log      *log.Logger

	mu       sync.Mutex
	gen      uint64
	identity string
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithPollClock sets the clock driving the poll ticker.
func WithPollClock(c clock.Clock) PollerOption {
	return func(p *Poller) { p.clock = c }
}

// WithPollInterval sets the poll interval.
func WithPollInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithPollLogger sets the poller logger.
func WithPollLogger(l *log.Logger) PollerOption {
	return func(p *Poller) { p.log = l }
}

// NewPoller creates a poller that reports readings to onUpdate.
// onUpdate is called from the poller's goroutine and must not call back
// into the poller.
func NewPoller(source BalanceSource, onUpdate func(BalanceUpdate), opts ...PollerOption) *Poller {
	p := &Poller{
		source:   source,
		onUpdate: onUpdate,
		clock:    clock.New(),
		interval: DefaultPollInterval,
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Watch starts polling identity, replacing any previous watch. The first
// reading is taken immediately. An empty identity only stops polling.
func (p *Poller) Watch(ctx context.Context, identity string) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	p.identity = identity
	if identity == "" {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	gen := p.gen
	p.mu.Unlock()

	p.wg.Add(1)
	go p.loop(ctx, gen, identity)
}

func (p *Poller) loop(ctx context.Context, gen uint64, identity string) {
	defer p.wg.Done()

	ticker := p.clock.Ticker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, gen, identity)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx, gen, identity)
		}
	}
}

// RefreshAfter takes one extra reading of the watched identity after d,
// used to pick up a balance change shortly after a transfer.
func (p *Poller) RefreshAfter(d time.Duration) {
	p.mu.Lock()
	gen, identity := p.gen, p.identity
	p.mu.Unlock()
	if identity == "" {
		return
	}
	p.clock.AfterFunc(d, func() {
		p.poll(context.Background(), gen, identity)
	})
}

// poll reads the balance and delivers it if the watch is still current.
func (p *Poller) poll(ctx context.Context, gen uint64, identity string) {
	sol, err := p.source.Balance(ctx, identity)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.log.Warn("balance refresh failed", "identity", identity, "err", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	if p.onUpdate != nil {
		p.onUpdate(BalanceUpdate{Identity: identity, SOL: sol, Err: err, At: p.clock.Now()})
	}
}

// Stop cancels the current watch and waits for its goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	p.identity = ""
	p.mu.Unlock()
	p.wg.Wait()
}
