// Package normalize turns decoded raw snapshots into canonical tick
// records: scalar sanitization, trading-date resolution and assembly.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/yanun0323/errors"

	"tickrec/internal/model"
	"tickrec/internal/model/enum"
	"tickrec/pkg/exception"
)

const (
	exchangeLayout  = "20060102 15:04:05.000000"
	localtimeLayout = "2006-01-02 15:04:05"
)

var depthKeys = [16]string{
	"BidPrice2", "BidPrice3", "BidPrice4", "BidPrice5",
	"BidVolume2", "BidVolume3", "BidVolume4", "BidVolume5",
	"AskPrice2", "AskPrice3", "AskPrice4", "AskPrice5",
	"AskVolume2", "AskVolume3", "AskVolume4", "AskVolume5",
}

// Assemble composes a canonical tick record from a decoded snapshot.
//
// A snapshot without UpdateTime is incomplete: the record is discarded
// and (nil, nil) returned. Once UpdateTime is present the feed
// guarantees the remaining required fields, so a missing or unparseable
// field is corrupt data and returns a hard error instead of a partial
// record.
func Assemble(snapshot map[string]string, vtSymbol string) (*model.TickData, error) {
	if snapshot["UpdateTime"] == "" {
		return nil, nil
	}

	symbol, exchange, err := SplitVTSymbol(vtSymbol)
	if err != nil {
		return nil, err
	}

	localtimeRaw, ok := snapshot["localtime"]
	if !ok {
		return nil, errors.Wrap(exception.ErrMissingField, "localtime")
	}
	localtime, err := time.Parse(localtimeLayout, localtimeRaw)
	if err != nil {
		return nil, errors.Wrap(exception.ErrCorruptTimestamp, localtimeRaw)
	}

	date := ResolveTradingDate(snapshot, exchange, localtime)
	datetime, err := parseExchangeTime(date, snapshot["UpdateTime"], snapshot["UpdateMillisec"])
	if err != nil {
		return nil, err
	}

	tick := &model.TickData{
		Symbol:    symbol,
		Exchange:  exchange,
		Datetime:  datetime,
		Localtime: localtime,
	}

	fields := []struct {
		key      string
		dst      *float64
		sanitize bool
	}{
		{"Volume", &tick.Volume, false},
		{"Turnover", &tick.Turnover, false},
		{"OpenInterest", &tick.OpenInterest, false},
		{"LastPrice", &tick.LastPrice, true},
		{"UpperLimitPrice", &tick.LimitUp, false},
		{"LowerLimitPrice", &tick.LimitDown, false},
		{"OpenPrice", &tick.OpenPrice, true},
		{"HighestPrice", &tick.HighPrice, true},
		{"LowestPrice", &tick.LowPrice, true},
		{"PreClosePrice", &tick.PreClose, true},
		{"BidPrice1", &tick.BidPrice1, true},
		{"AskPrice1", &tick.AskPrice1, true},
		{"BidVolume1", &tick.BidVolume1, false},
		{"AskVolume1", &tick.AskVolume1, false},
	}
	for _, field := range fields {
		value, err := floatField(snapshot, field.key)
		if err != nil {
			return nil, err
		}
		if field.sanitize {
			value = SanitizePrice(value)
		}
		*field.dst = value
	}

	depth, err := assembleDepth(snapshot)
	if err != nil {
		return nil, err
	}
	tick.Depth = depth

	return tick, nil
}

// SplitVTSymbol splits "IC2412.CFFEX" into symbol and exchange. The
// symbol part may itself contain dots, so the split is on the last one.
func SplitVTSymbol(vtSymbol string) (string, enum.Exchange, error) {
	idx := strings.LastIndexByte(vtSymbol, '.')
	if idx <= 0 || idx == len(vtSymbol)-1 {
		return "", 0, errors.Wrap(exception.ErrBadVTSymbol, vtSymbol)
	}
	exchange, ok := enum.ParseExchange(vtSymbol[idx+1:])
	if !ok {
		return "", 0, errors.Wrap(exception.ErrUnknownExchange, vtSymbol[idx+1:])
	}
	return vtSymbol[:idx], exchange, nil
}

// parseExchangeTime composes "<date> <UpdateTime>.<micros>" where the
// millisecond field is right-padded to six digits, the same reading the
// historical loader applied to one-to-six digit fractions.
func parseExchangeTime(date, updateTime, millisec string) (time.Time, error) {
	if millisec == "" {
		return time.Time{}, errors.Wrap(exception.ErrMissingField, "UpdateMillisec")
	}
	if len(millisec) > 6 {
		return time.Time{}, errors.Wrap(exception.ErrCorruptTimestamp, millisec)
	}
	micros := millisec + strings.Repeat("0", 6-len(millisec))

	composed := date + " " + updateTime + "." + micros
	datetime, err := time.Parse(exchangeLayout, composed)
	if err != nil {
		return time.Time{}, errors.Wrap(exception.ErrCorruptTimestamp, composed)
	}
	return datetime, nil
}

func assembleDepth(snapshot map[string]string) (*model.Depth, error) {
	if snapshot["BidVolume2"] == "" && snapshot["AskVolume2"] == "" {
		return nil, nil
	}

	for _, key := range depthKeys {
		if snapshot[key] == "" {
			return nil, errors.Wrap(exception.ErrPartialDepth, key)
		}
	}

	var depth model.Depth
	for i := 0; i < 4; i++ {
		level := strconv.Itoa(i + 2)
		var err error
		if depth.BidPrices[i], err = floatField(snapshot, "BidPrice"+level); err != nil {
			return nil, err
		}
		if depth.BidVolumes[i], err = floatField(snapshot, "BidVolume"+level); err != nil {
			return nil, err
		}
		if depth.AskPrices[i], err = floatField(snapshot, "AskPrice"+level); err != nil {
			return nil, err
		}
		if depth.AskVolumes[i], err = floatField(snapshot, "AskVolume"+level); err != nil {
			return nil, err
		}
		depth.BidPrices[i] = SanitizePrice(depth.BidPrices[i])
		depth.AskPrices[i] = SanitizePrice(depth.AskPrices[i])
	}
	return &depth, nil
}

func floatField(snapshot map[string]string, key string) (float64, error) {
	raw, ok := snapshot[key]
	if !ok {
		return 0, errors.Wrap(exception.ErrMissingField, key)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(exception.ErrCorruptNumber, key+"="+raw)
	}
	return value, nil
}
