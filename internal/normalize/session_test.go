package normalize

import (
	"testing"
	"time"

	"tickrec/internal/model/enum"
)

func TestResolveTradingDateNightRollover(t *testing.T) {
	localtime := time.Date(2023, 9, 14, 21, 5, 0, 0, time.UTC)
	snapshot := map[string]string{"ActionDay": "20230915"}

	// DCE's ActionDay rolls forward during the night session and is
	// ignored in favor of the local receipt date.
	if got := ResolveTradingDate(snapshot, enum.ExchangeDCE, localtime); got != "20230914" {
		t.Fatalf("DCE date: got %s want 20230914", got)
	}
}

func TestResolveTradingDateActionDayWins(t *testing.T) {
	localtime := time.Date(2023, 9, 14, 21, 5, 0, 0, time.UTC)
	snapshot := map[string]string{"ActionDay": "20230915"}

	if got := ResolveTradingDate(snapshot, enum.ExchangeCFFEX, localtime); got != "20230915" {
		t.Fatalf("CFFEX date: got %s want 20230915", got)
	}
}

func TestResolveTradingDateFallback(t *testing.T) {
	localtime := time.Date(2023, 9, 14, 21, 5, 0, 0, time.UTC)

	for _, snapshot := range []map[string]string{
		{},
		{"ActionDay": ""},
	} {
		if got := ResolveTradingDate(snapshot, enum.ExchangeSHFE, localtime); got != "20230914" {
			t.Fatalf("fallback date: got %s want 20230914", got)
		}
	}
}
