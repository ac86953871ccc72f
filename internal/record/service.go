// Package record is the live-capture service: it subscribes futures
// contracts as the venue announces them and journals every raw
// snapshot.
package record

import (
	"time"

	"github.com/yanun0323/logs"

	"tickrec/internal/bus"
	"tickrec/internal/gateway"
	"tickrec/internal/journal"
)

const localtimeLayout = "2006-01-02 15:04:05"

// Service wires the event engine, the feed gateway and the journal
// writer together. All handlers run on the engine's dispatch goroutine.
type Service struct {
	gw        gateway.Gateway
	writer    *journal.Writer
	contracts map[string]gateway.ContractData
	now       func() time.Time
}

// NewService creates the capture service and registers its handlers on
// the engine.
func NewService(engine *bus.Engine, gw gateway.Gateway, writer *journal.Writer) *Service {
	s := &Service{
		gw:        gw,
		writer:    writer,
		contracts: make(map[string]gateway.ContractData),
		now:       time.Now,
	}
	engine.Register(bus.EventLog, s.onLog)
	engine.Register(bus.EventContract, s.onContract)
	engine.Register(bus.EventRawSnapshot, s.onRawSnapshot)
	return s
}

// WithClock swaps the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *Service) onLog(event bus.Event) {
	if msg, ok := event.Data.(string); ok {
		logs.Info(msg)
	}
}

// onContract caches futures contracts and subscribes their feed. Other
// product types are not recorded.
func (s *Service) onContract(event bus.Event) {
	contract, ok := event.Data.(gateway.ContractData)
	if !ok || contract.Product != gateway.ProductFutures {
		return
	}

	s.contracts[contract.Symbol] = contract

	err := s.gw.Subscribe(gateway.SubscribeRequest{
		Symbol:   contract.Symbol,
		Exchange: contract.Exchange,
	})
	if err != nil {
		logs.Errorf("subscribe %s: %+v", contract.Symbol, err)
	}
}

func (s *Service) onRawSnapshot(event bus.Event) {
	snapshot, ok := event.Data.(map[string]string)
	if !ok {
		return
	}
	s.OnRawSnapshot(snapshot)
}

// OnRawSnapshot is the capture entry point: it injects the exchange
// identity and local receipt time into the snapshot and appends it to
// the instrument's journal. Snapshots for unknown instruments are
// skipped; append failures are logged and capture continues.
func (s *Service) OnRawSnapshot(snapshot map[string]string) {
	symbol := snapshot["InstrumentID"]
	contract, ok := s.contracts[symbol]
	if !ok {
		return
	}

	snapshot["ExchangeID"] = contract.Exchange.String()
	snapshot["localtime"] = s.now().Format(localtimeLayout)

	if err := s.writer.Append(symbol, snapshot["ExchangeID"], snapshot); err != nil {
		logs.Errorf("append %s.%s: %+v", symbol, snapshot["ExchangeID"], err)
	}
}
