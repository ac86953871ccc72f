package model

import (
	"time"

	"tickrec/internal/model/enum"
)

// TickData is the canonical record for one market-data snapshot. It is
// built once per snapshot and never mutated afterwards.
type TickData struct {
	Symbol   string
	Exchange enum.Exchange

	// Datetime is the exchange timestamp composed from the resolved
	// trading date, UpdateTime and UpdateMillisec.
	Datetime time.Time
	// Localtime is the wall clock at capture, second resolution.
	Localtime time.Time

	Volume       float64
	Turnover     float64
	OpenInterest float64

	LastPrice float64
	LimitUp   float64
	LimitDown float64
	OpenPrice float64
	HighPrice float64
	LowPrice  float64
	PreClose  float64

	BidPrice1  float64
	BidVolume1 float64
	AskPrice1  float64
	AskVolume1 float64

	// Depth carries order-book levels 2..5. nil means the feed sent
	// top-of-book only; a non-nil value always carries all 16 fields.
	Depth *Depth
}

// VTSymbol returns the {symbol}.{exchange} identity used for journal
// file naming.
func (t *TickData) VTSymbol() string {
	return t.Symbol + "." + t.Exchange.String()
}

// Depth is the order-book levels 2..5 as an all-or-nothing unit.
type Depth struct {
	BidPrices  [4]float64
	BidVolumes [4]float64
	AskPrices  [4]float64
	AskVolumes [4]float64
}
