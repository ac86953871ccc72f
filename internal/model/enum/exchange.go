package enum

// Exchange identifies the trading venue a contract belongs to.
type Exchange uint8

const (
	_exchange_beg Exchange = iota
	ExchangeCFFEX
	ExchangeSHFE
	ExchangeDCE
	ExchangeCZCE
	ExchangeINE
	ExchangeGFEX
	_exchange_end
)

var exchangeCodes = [...]string{
	ExchangeCFFEX: "CFFEX",
	ExchangeSHFE:  "SHFE",
	ExchangeDCE:   "DCE",
	ExchangeCZCE:  "CZCE",
	ExchangeINE:   "INE",
	ExchangeGFEX:  "GFEX",
}

func (e Exchange) IsAvailable() bool {
	return e > _exchange_beg && e < _exchange_end
}

func (e Exchange) String() string {
	if !e.IsAvailable() {
		return ""
	}
	return exchangeCodes[e]
}

// HasNightRollover reports whether the venue's night session rolls the
// nominal trading date forward, making the feed's ActionDay unreliable.
func (e Exchange) HasNightRollover() bool {
	return e == ExchangeDCE
}

// ParseExchange maps a venue code to its Exchange value.
func ParseExchange(code string) (Exchange, bool) {
	for e := _exchange_beg + 1; e < _exchange_end; e++ {
		if exchangeCodes[e] == code {
			return e, true
		}
	}
	return _exchange_beg, false
}
