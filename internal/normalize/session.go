package normalize

import (
	"time"

	"tickrec/internal/model/enum"
)

const tradingDateLayout = "20060102"

// ResolveTradingDate derives the authoritative trading date for a
// snapshot, returned in YYYYMMDD form.
//
// DCE rolls the nominal trading date forward during the night session,
// so its ActionDay is unreliable and the local receipt date wins
// unconditionally. Everywhere else a non-empty ActionDay is taken
// verbatim, with the local receipt date as fallback.
func ResolveTradingDate(snapshot map[string]string, exchange enum.Exchange, localtime time.Time) string {
	if exchange.HasNightRollover() {
		return localtime.Format(tradingDateLayout)
	}
	if actionDay := snapshot["ActionDay"]; actionDay != "" {
		return actionDay
	}
	return localtime.Format(tradingDateLayout)
}
