// Package sim is a synthetic feed gateway producing CTP-shaped raw
// snapshots, used for demos and capture-path tests.
package sim

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/yanun0323/logs"

	"tickrec/internal/bus"
	"tickrec/internal/gateway"
)

// Config controls the synthetic feed.
type Config struct {
	Contracts []gateway.ContractData
	// Ticks is how many snapshots to emit per subscribed instrument.
	Ticks     int
	Interval  time.Duration
	BasePrice float64
	Spread    float64
}

// Gateway emits synthetic snapshots for every subscribed instrument.
type Gateway struct {
	engine *bus.Engine
	cfg    Config

	mu     sync.Mutex
	subs   []gateway.SubscribeRequest
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a synthetic gateway publishing into the engine.
func New(engine *bus.Engine, cfg Config) *Gateway {
	if cfg.Ticks <= 0 {
		cfg.Ticks = 1
	}
	if cfg.BasePrice <= 0 {
		cfg.BasePrice = 100
	}
	if cfg.Spread <= 0 {
		cfg.Spread = 0.2
	}
	return &Gateway{engine: engine, cfg: cfg}
}

// Connect announces the configured contracts and starts the feed loop.
func (g *Gateway) Connect(ctx context.Context, _ gateway.ConnectSettings) error {
	for _, contract := range g.cfg.Contracts {
		if err := g.engine.TryPublish(bus.Event{Type: bus.EventContract, Data: contract}); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	g.mu.Lock()
	g.cancel = cancel
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.run(runCtx)
	}()
	return nil
}

// Subscribe registers one instrument with the feed loop.
func (g *Gateway) Subscribe(req gateway.SubscribeRequest) error {
	g.mu.Lock()
	g.subs = append(g.subs, req)
	g.mu.Unlock()
	return nil
}

// Close stops the feed loop and waits for it to drain.
func (g *Gateway) Close() error {
	g.mu.Lock()
	cancel := g.cancel
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	g.wg.Wait()
	return nil
}

func (g *Gateway) run(ctx context.Context) {
	// Subscriptions arrive on the dispatch goroutine right after the
	// contract events; one interval is enough for them to land.
	wait := g.cfg.Interval
	if wait <= 0 {
		wait = 10 * time.Millisecond
	}

	for i := 0; i < g.cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		g.mu.Lock()
		subs := make([]gateway.SubscribeRequest, len(g.subs))
		copy(subs, g.subs)
		g.mu.Unlock()

		now := time.Now()
		for n, sub := range subs {
			snapshot := g.snapshot(sub.Symbol, now, i, n)
			if err := g.engine.TryPublish(bus.Event{Type: bus.EventRawSnapshot, Data: snapshot}); err != nil {
				logs.Warnf("sim: drop snapshot for %s: %+v", sub.Symbol, err)
			}
		}
	}
}

func (g *Gateway) snapshot(symbol string, now time.Time, round, offset int) map[string]string {
	price := g.cfg.BasePrice + float64(round)*0.2 + float64(offset)
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return map[string]string{
		"InstrumentID":    symbol,
		"TradingDay":      now.Format("20060102"),
		"ActionDay":       now.Format("20060102"),
		"UpdateTime":      now.Format("15:04:05"),
		"UpdateMillisec":  strconv.Itoa(now.Nanosecond() / 1e6),
		"LastPrice":       f(price),
		"OpenPrice":       f(g.cfg.BasePrice),
		"HighestPrice":    f(price + g.cfg.Spread),
		"LowestPrice":     f(g.cfg.BasePrice - g.cfg.Spread),
		"PreClosePrice":   f(g.cfg.BasePrice),
		"UpperLimitPrice": f(g.cfg.BasePrice * 1.1),
		"LowerLimitPrice": f(g.cfg.BasePrice * 0.9),
		"Volume":          strconv.Itoa((round + 1) * 10),
		"Turnover":        f(price * float64((round+1)*10)),
		"OpenInterest":    strconv.Itoa(1000 + round),
		"BidPrice1":       f(price - g.cfg.Spread/2),
		"BidVolume1":      "5",
		"AskPrice1":       f(price + g.cfg.Spread/2),
		"AskVolume1":      "7",
	}
}
