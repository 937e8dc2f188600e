// Command lobd builds an in-memory limit order book, optionally bulk-loads
// it from a template-formatted file, and prints its observables. Wire
// protocols and persistence are out of this module's scope (spec.md §1), so
// this is a one-shot CLI rather than a long-running server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lob/internal/book"
	"lob/internal/ingest"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	asset := flag.String("asset", "", "asset name for settlement bookkeeping and display")
	currency := flag.String("currency", "", "currency symbol for display")
	ingestPath := flag.String("ingest", "", "bulk-load orders from this file before printing the book")
	lineFormat := flag.String("format", ingest.DefaultLineFormat, "ingestion line template")
	recordHistory := flag.Bool("history", false, "record match history")

	flag.Parse()

	b := book.New(book.Config{
		AssetName:          *asset,
		CurrencySymbol:     *currency,
		RecordMatchHistory: *recordHistory,
	})

	if *ingestPath != "" {
		if err := runIngest(*ingestPath, *lineFormat, b); err != nil {
			log.Fatal().Err(err).Msg("ingestion failed")
		}
	}

	fmt.Println(b.String())
}

func runIngest(path, lineFormat string, b *book.OrderBook) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	ids, err := ingest.ReadFile(file, lineFormat, b)
	if err != nil {
		return err
	}
	log.Info().Int("orders", len(ids)).Str("path", path).Msg("ingestion complete")
	return nil
}
