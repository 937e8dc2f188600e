// Package ingest is the bulk file-ingestion external collaborator described
// in spec.md §6: a template-driven CSV-like line reader, and a
// tomb-supervised worker pool for ingesting several files concurrently. It
// sits outside the core matching algorithm's scope (spec.md §1 names file
// ingestion as an out-of-scope collaborator) but is still part of this
// module.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"lob/internal/common"
)

// DefaultLineFormat is the template spec.md §6 gives as an example.
const DefaultLineFormat = "{Type},{ID},{Price},{Quantity}"

var recognizedTokens = map[string]bool{
	"{Type}":     true,
	"{Price}":    true,
	"{Quantity}": true,
}

// Submitter is the narrow surface ingestion needs from a book: allocate a
// bid or ask and return its id. *book.OrderBook satisfies this.
type Submitter interface {
	SubmitBid(quantity, price int64, participant *common.Participant) int64
	SubmitAsk(quantity, price int64, participant *common.Participant) int64
}

// columns maps the recognized tokens to their positional index in a
// lineFormat template. {ID} and any skip column ({*}, {}, blank) are simply
// absent from the map, matching spec.md: "{ID} is ignored — ids are
// assigned internally".
type columns struct {
	typeAt     int
	priceAt    int
	quantityAt int
}

func parseLineFormat(lineFormat string) (columns, error) {
	var c columns
	c.typeAt, c.priceAt, c.quantityAt = -1, -1, -1

	for i, token := range strings.Split(lineFormat, ",") {
		if !recognizedTokens[token] {
			continue
		}
		switch token {
		case "{Type}":
			c.typeAt = i
		case "{Price}":
			c.priceAt = i
		case "{Quantity}":
			c.quantityAt = i
		}
	}

	if c.typeAt < 0 || c.priceAt < 0 || c.quantityAt < 0 {
		return columns{}, fmt.Errorf("line format %q missing a required token: %w", lineFormat, common.ErrMalformedInput)
	}
	return c, nil
}

// ReadFile reads every line of r as a lineFormat-templated record and
// submits a bid or ask for each to book. Malformed lines are logged and
// skipped rather than aborting the whole read, per spec.md §7's
// recommendation to continue past malformed input with a diagnostic.
// Returns the set of ids allocated.
func ReadFile(r io.Reader, lineFormat string, book Submitter) (map[int64]struct{}, error) {
	cols, err := parseLineFormat(lineFormat)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]struct{})
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		id, err := ingestLine(line, cols, book)
		if err != nil {
			log.Warn().Err(err).Int("line", lineNo).Str("content", line).Msg("skipping malformed ingestion line")
			continue
		}
		ids[id] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return ids, err
	}
	return ids, nil
}

func ingestLine(line string, cols columns, book Submitter) (int64, error) {
	fields := strings.Split(line, ",")
	maxIdx := cols.typeAt
	if cols.priceAt > maxIdx {
		maxIdx = cols.priceAt
	}
	if cols.quantityAt > maxIdx {
		maxIdx = cols.quantityAt
	}
	if maxIdx >= len(fields) {
		return 0, fmt.Errorf("line has %d fields, need index %d: %w", len(fields), maxIdx, common.ErrMalformedInput)
	}

	txType := strings.TrimSpace(fields[cols.typeAt])
	price, err := strconv.ParseInt(strings.TrimSpace(fields[cols.priceAt]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", fields[cols.priceAt], common.ErrMalformedInput)
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(fields[cols.quantityAt]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", fields[cols.quantityAt], common.ErrMalformedInput)
	}

	if isBidToken(txType) {
		return book.SubmitBid(quantity, price, nil), nil
	}
	return book.SubmitAsk(quantity, price, nil), nil
}

func isBidToken(txType string) bool {
	switch strings.ToLower(txType) {
	case "b", "bid", "buy":
		return true
	default:
		return false
	}
}
