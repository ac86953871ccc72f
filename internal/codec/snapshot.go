// Package codec implements the legacy journal line format: one raw
// snapshot mapping per line, rendered as single-quoted key/value pairs
// inside braces. Pairs are joined by a full-width comma plus space so
// that ASCII commas and colons inside values never collide with the
// separator. The grammar is fixed by the historical files on disk and
// must stay bit-exact.
package codec

import (
	"sort"
	"strings"
	"sync/atomic"
)

const (
	pairSep = "， " // full-width comma + ASCII space
	kvSep   = ": "
)

// fieldOrder is the canonical feed field order. Encode emits known keys
// in this order so that output is deterministic; the injected ExchangeID
// and localtime fields come last, matching the capture path.
var fieldOrder = []string{
	"TradingDay",
	"InstrumentID",
	"ExchangeInstID",
	"LastPrice",
	"PreSettlementPrice",
	"PreClosePrice",
	"PreOpenInterest",
	"OpenPrice",
	"HighestPrice",
	"LowestPrice",
	"Volume",
	"Turnover",
	"OpenInterest",
	"ClosePrice",
	"SettlementPrice",
	"UpperLimitPrice",
	"LowerLimitPrice",
	"PreDelta",
	"CurrDelta",
	"UpdateTime",
	"UpdateMillisec",
	"BidPrice1",
	"BidVolume1",
	"AskPrice1",
	"AskVolume1",
	"BidPrice2",
	"BidVolume2",
	"AskPrice2",
	"AskVolume2",
	"BidPrice3",
	"BidVolume3",
	"AskPrice3",
	"AskVolume3",
	"BidPrice4",
	"BidVolume4",
	"AskPrice4",
	"AskVolume4",
	"BidPrice5",
	"BidVolume5",
	"AskPrice5",
	"AskVolume5",
	"AveragePrice",
	"ActionDay",
	"ExchangeID",
	"localtime",
}

var fieldRank = initFieldRank()

func initFieldRank() map[string]int {
	m := make(map[string]int, len(fieldOrder))
	for i, key := range fieldOrder {
		m[key] = i
	}
	return m
}

// Encode renders a snapshot mapping as one journal line, without the
// leading newline the writer prepends. Known feed fields keep their
// canonical order; unknown keys follow, sorted.
func Encode(snapshot map[string]string) string {
	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := fieldRank[keys[i]]
		rj, jKnown := fieldRank[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	var b strings.Builder
	b.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			b.WriteString(pairSep)
		}
		b.WriteByte('\'')
		b.WriteString(key)
		b.WriteByte('\'')
		b.WriteString(kvSep)
		b.WriteByte('\'')
		b.WriteString(snapshot[key])
		b.WriteByte('\'')
	}
	b.WriteByte('}')
	return b.String()
}

// Decoder parses journal lines back into snapshot mappings. Decoding
// never fails: malformed segments are dropped, and downstream assembly
// rejects the mapping if required fields went missing. Dropped segments
// are counted so that silent data loss stays observable.
type Decoder struct {
	skipped atomic.Uint64
}

// Decode parses one journal line into a snapshot mapping. A blank line
// yields an empty mapping.
func (d *Decoder) Decode(line string) map[string]string {
	line = strings.TrimSpace(line)
	snapshot := make(map[string]string)
	if line == "" {
		return snapshot
	}

	line = strings.TrimPrefix(line, "{")
	line = strings.TrimSuffix(line, "}")
	// The legacy writer renders empty values as doubled quotes.
	line = strings.ReplaceAll(line, "''", "")

	for _, segment := range strings.Split(line, pairSep) {
		parts := strings.SplitN(segment, kvSep, 2)
		if len(parts) != 2 {
			d.skipped.Add(1)
			continue
		}
		snapshot[trimQuotes(parts[0])] = trimQuotes(parts[1])
	}
	return snapshot
}

// SkippedFragments returns how many segments failed to split into a
// key/value pair since the decoder was created.
func (d *Decoder) SkippedFragments() uint64 {
	return d.skipped.Load()
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
