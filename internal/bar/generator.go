// Package bar aggregates tick records into fixed one-minute OHLCV bars
// and exports them.
package bar

import (
	"time"

	"github.com/shopspring/decimal"

	"tickrec/internal/model"
)

const interval = "1m"

// Generator folds a tick stream into one-minute bars and pushes each
// finished bar to the callback. Feed volume, turnover and open interest
// are session-cumulative, so per-bar volume is the positive delta
// between consecutive ticks.
type Generator struct {
	onBar    func(model.BarData)
	bar      *model.BarData
	lastTick *model.TickData
}

// NewGenerator creates a generator delivering finished bars to onBar.
func NewGenerator(onBar func(model.BarData)) *Generator {
	return &Generator{onBar: onBar}
}

// Update feeds one tick. Ticks with a zero last price carry a sanitized
// invalid value and neither open nor extend a bar.
func (g *Generator) Update(tick *model.TickData) {
	if tick == nil || tick.LastPrice == 0 {
		return
	}

	window := tick.Datetime.Truncate(time.Minute)
	price := decimal.NewFromFloat(tick.LastPrice)

	if g.bar != nil && !g.bar.Datetime.Equal(window) {
		g.emit()
	}

	if g.bar == nil {
		g.bar = &model.BarData{
			Symbol:       tick.Symbol,
			Exchange:     tick.Exchange,
			ExchangeCode: tick.Exchange.String(),
			Datetime:     window,
			Interval:     interval,
			Open:         price,
			High:         price,
			Low:          price,
			Close:        price,
		}
	} else {
		if price.GreaterThan(g.bar.High) {
			g.bar.High = price
		}
		if price.LessThan(g.bar.Low) {
			g.bar.Low = price
		}
		g.bar.Close = price
	}
	g.bar.OpenInterest = tick.OpenInterest

	if g.lastTick != nil {
		if delta := tick.Volume - g.lastTick.Volume; delta > 0 {
			g.bar.Volume = g.bar.Volume.Add(decimal.NewFromFloat(delta))
		}
		if delta := tick.Turnover - g.lastTick.Turnover; delta > 0 {
			g.bar.Turnover = g.bar.Turnover.Add(decimal.NewFromFloat(delta))
		}
	}
	g.lastTick = tick
}

// Flush emits the in-progress bar, if any. Call it once the tick stream
// is exhausted.
func (g *Generator) Flush() {
	if g.bar != nil {
		g.emit()
	}
}

func (g *Generator) emit() {
	if g.onBar != nil {
		g.onBar(*g.bar)
	}
	g.bar = nil
}
