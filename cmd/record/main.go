package main

import (
	"context"
	"flag"
	"log"
	"time"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"tickrec/internal/bus"
	"tickrec/internal/gateway"
	"tickrec/internal/gateway/sim"
	"tickrec/internal/journal"
	"tickrec/internal/ops"
	"tickrec/internal/record"
)

func main() {
	configPath := flag.String("config", "connect_ctp.json", "Path to JSON config")
	dataDir := flag.String("data-dir", "", "Journal directory (overrides config dataDir)")
	useSim := flag.Bool("sim", false, "Use the synthetic feed instead of a venue gateway")
	simTicks := flag.Int("sim-ticks", 10, "Snapshots per instrument in sim mode")
	simInterval := flag.Duration("sim-interval", 500*time.Millisecond, "Delay between sim snapshots")
	profileAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *dataDir != "" {
		loaded.DataDir = *dataDir
	}

	if *profileAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "tickrec/record",
			ServerAddress:   *profileAddr,
			Logger:          emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileInuseObjects,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	writer, err := journal.NewWriter(journal.Config{Dir: loaded.DataDir})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := bus.NewEngine(loaded.QueueSize)

	var gw gateway.Gateway
	if *useSim {
		gw = sim.New(engine, sim.Config{
			Contracts: loaded.Contracts,
			Ticks:     *simTicks,
			Interval:  *simInterval,
		})
	} else {
		// The CTP gateway binding lives outside this repository; the
		// synthetic feed exercises the same capture path.
		log.Fatalf("no venue gateway built in; run with -sim")
	}

	record.NewService(engine, gw, writer)

	done := make(chan struct{})
	go func() {
		defer close(done)
		engine.Run(ctx)
	}()

	if err := gw.Connect(ctx, loaded.Gateway); err != nil {
		log.Fatalf("gateway connect failed: %v", err)
	}
	logs.Infof("recording to %s", loaded.DataDir)

	<-sys.Shutdown()
	logs.Info("shutdown signal received")

	if err := gw.Close(); err != nil {
		logs.Errorf("gateway close: %+v", err)
	}
	engine.Close()
	<-done
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
