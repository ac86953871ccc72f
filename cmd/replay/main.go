package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/yanun0323/logs"

	"tickrec/internal/bar"
	"tickrec/internal/journal"
	"tickrec/internal/model"
	"tickrec/internal/store"
)

func main() {
	dir := flag.String("dir", "tick_data", "Journal directory")
	vtSymbol := flag.String("vt-symbol", "", "Instrument to replay, e.g. IC2412.CFFEX")
	csvOut := flag.String("csv-out", "", "Bar CSV output path (default: <vt-symbol>.csv)")
	pgConn := flag.String("pg-conn", "", "Postgres connection string for the bar store (empty=disabled)")
	flag.Parse()

	if *vtSymbol == "" {
		log.Fatalf("missing instrument; use -vt-symbol")
	}

	reader, err := journal.NewReader(journal.Config{Dir: *dir}, *vtSymbol)
	if err != nil {
		log.Fatalf("reader init failed: %v", err)
	}

	var bars []model.BarData
	generator := bar.NewGenerator(func(b model.BarData) {
		bars = append(bars, b)
	})

	var ticks int
	err = reader.Replay(context.Background(), func(tick *model.TickData) error {
		ticks++
		generator.Update(tick)
		return nil
	})
	if err != nil {
		log.Fatalf("replay failed: %v", err)
	}
	generator.Flush()

	logs.Infof("replayed %d ticks into %d bars from %s", ticks, len(bars), reader.Path())

	out := *csvOut
	if out == "" {
		out = fmt.Sprintf("%s.csv", *vtSymbol)
	}
	if err := bar.WriteCSV(out, bars); err != nil {
		log.Fatalf("csv write failed: %v", err)
	}
	logs.Infof("bars written to %s", out)

	if *pgConn != "" {
		barStore, err := store.NewBarStore(store.Option{ConnString: *pgConn})
		if err != nil {
			log.Fatalf("bar store init failed: %v", err)
		}
		defer barStore.Close()
		if err := barStore.SaveBars(bars); err != nil {
			log.Fatalf("bar store save failed: %v", err)
		}
		logs.Infof("bars stored to postgres")
	}
}
