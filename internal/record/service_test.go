package record

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickrec/internal/bus"
	"tickrec/internal/gateway"
	"tickrec/internal/journal"
	"tickrec/internal/model/enum"
)

type fakeGateway struct {
	subs []gateway.SubscribeRequest
}

func (f *fakeGateway) Connect(context.Context, gateway.ConnectSettings) error { return nil }
func (f *fakeGateway) Subscribe(req gateway.SubscribeRequest) error {
	f.subs = append(f.subs, req)
	return nil
}
func (f *fakeGateway) Close() error { return nil }

func rawSnapshot(symbol string) map[string]string {
	return map[string]string{
		"InstrumentID":   symbol,
		"UpdateTime":     "09:30:00",
		"UpdateMillisec": "500",
		"ActionDay":      "20241210",
		"LastPrice":      "3890.2",
		"Volume":         "100",
	}
}

func TestServiceRecordsSubscribedFutures(t *testing.T) {
	dir := t.TempDir()
	writer, err := journal.NewWriter(journal.Config{Dir: dir})
	require.NoError(t, err)

	engine := bus.NewEngine(16)
	gw := &fakeGateway{}
	NewService(engine, gw, writer).WithClock(func() time.Time {
		return time.Date(2024, 12, 10, 9, 30, 0, 0, time.UTC)
	})

	contract := gateway.ContractData{
		Symbol:   "IC2412",
		Exchange: enum.ExchangeCFFEX,
		Product:  gateway.ProductFutures,
	}
	require.NoError(t, engine.TryPublish(bus.Event{Type: bus.EventContract, Data: contract}))
	require.NoError(t, engine.TryPublish(bus.Event{Type: bus.EventRawSnapshot, Data: rawSnapshot("IC2412")}))
	engine.Close()
	engine.Run(context.Background())

	require.Len(t, gw.subs, 1)
	assert.Equal(t, "IC2412", gw.subs[0].Symbol)

	raw, err := os.ReadFile(filepath.Join(dir, "IC2412.CFFEX.txt"))
	require.NoError(t, err)

	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "\n{"))
	assert.Contains(t, content, "'ExchangeID': 'CFFEX'")
	assert.Contains(t, content, "'localtime': '2024-12-10 09:30:00'")
}

func TestServiceSkipsUnknownInstrument(t *testing.T) {
	dir := t.TempDir()
	writer, err := journal.NewWriter(journal.Config{Dir: dir})
	require.NoError(t, err)

	engine := bus.NewEngine(16)
	NewService(engine, &fakeGateway{}, writer)

	require.NoError(t, engine.TryPublish(bus.Event{Type: bus.EventRawSnapshot, Data: rawSnapshot("rb2501")}))
	engine.Close()
	engine.Run(context.Background())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServiceIgnoresNonFutures(t *testing.T) {
	engine := bus.NewEngine(16)
	gw := &fakeGateway{}
	writer, err := journal.NewWriter(journal.Config{Dir: t.TempDir()})
	require.NoError(t, err)
	NewService(engine, gw, writer)

	contract := gateway.ContractData{
		Symbol:   "IO2412-C-3900",
		Exchange: enum.ExchangeCFFEX,
		Product:  gateway.ProductOption,
	}
	require.NoError(t, engine.TryPublish(bus.Event{Type: bus.EventContract, Data: contract}))
	engine.Close()
	engine.Run(context.Background())

	assert.Empty(t, gw.subs)
}
