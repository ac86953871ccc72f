package bar

import (
	"encoding/csv"
	"os"
	"strconv"

	"tickrec/internal/model"
)

var csvHeader = []string{
	"symbol", "exchange", "datetime", "interval", "volume", "turnover",
	"open_interest", "open_price", "high_price", "low_price", "close_price",
}

// WriteCSV saves bars to path, one row per bar, in generation order.
func WriteCSV(path string, bars []model.BarData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write([]string{
			b.Symbol,
			b.ExchangeCode,
			b.Datetime.Format("2006-01-02 15:04:05"),
			b.Interval,
			b.Volume.String(),
			b.Turnover.String(),
			strconv.FormatFloat(b.OpenInterest, 'f', -1, 64),
			b.Open.String(),
			b.High.String(),
			b.Low.String(),
			b.Close.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}
