// Package book implements the core continuous double-auction limit order
// book: the price-indexed side indices, the order registry, the mutation
// lock, and the matching engine that walks one side to consume the other's
// resting liquidity under price-time priority.
package book

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lob/internal/common"
)

// Config carries construction-time options. All fields are optional.
type Config struct {
	AssetName          string
	CurrencySymbol     string
	RecordMatchHistory bool
}

// OrderBook owns both side indices and the order registry for a single
// tradable asset, and serialises every public mutation behind one mutex
// (component F). Reads of the observables may race a concurrent mutator;
// callers that need a consistent view should use the Snapshot method.
type OrderBook struct {
	mu sync.Mutex

	bids *SideIndex
	asks *SideIndex
	reg  *registry

	nextID int64

	asset              string
	currencySymbol     string
	recordMatchHistory bool
	matchHistory       []common.Fill

	id     string // short correlation tag, logging only — not an order id
	logger zerolog.Logger
}

// New constructs an empty OrderBook.
func New(cfg Config) *OrderBook {
	tag := uuid.New().String()[:8]
	return &OrderBook{
		bids:               newBidIndex(),
		asks:               newAskIndex(),
		reg:                newRegistry(),
		asset:              cfg.AssetName,
		currencySymbol:     cfg.CurrencySymbol,
		recordMatchHistory: cfg.RecordMatchHistory,
		id:                 tag,
		logger:             log.With().Str("book_id", tag).Str("asset", cfg.AssetName).Logger(),
	}
}

// SubmitBid allocates a new id, constructs a buy order and runs it through
// the matching engine. Returns the allocated id whether or not it fully
// fills. quantity and price are caller-validated; this spec treats
// quantity<=0 or price<=0 as undefined input.
func (b *OrderBook) SubmitBid(quantity, price int64, participant *common.Participant) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	order := b.allocate(common.Buy, quantity, price, participant)
	b.logger.Debug().Int64("id", order.ID).Int64("price", price).Int64("quantity", quantity).Msg("submit bid")
	b.submit(order)
	return order.ID
}

// SubmitAsk is the sell-side mirror of SubmitBid.
func (b *OrderBook) SubmitAsk(quantity, price int64, participant *common.Participant) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	order := b.allocate(common.Sell, quantity, price, participant)
	b.logger.Debug().Int64("id", order.ID).Int64("price", price).Int64("quantity", quantity).Msg("submit ask")
	b.submit(order)
	return order.ID
}

func (b *OrderBook) allocate(side common.Side, quantity, price int64, participant *common.Participant) *common.Order {
	id := b.nextID
	b.nextID++
	return &common.Order{
		ID:          id,
		Side:        side,
		Price:       price,
		Quantity:    quantity,
		Participant: participant,
	}
}

// Update implements spec.md §4.E: quantity==0 behaves as Cancel and returns
// (0, false); an unknown id or owner mismatch is reported as an error; a
// price change or quantity increase is a cancel+resubmit (new id, priority
// lost); a quantity decrease at the same price mutates in place and keeps
// the original id and queue position.
func (b *OrderBook) Update(id, quantity, price int64, participant *common.Participant) (int64, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if quantity == 0 {
		b.cancel(id, participant)
		return 0, false, nil
	}

	existing, ok := b.reg.get(id)
	if !ok {
		return 0, false, fmt.Errorf("update %d: %w", id, common.ErrUnknownOrder)
	}
	if existing.Participant != participant {
		return 0, false, fmt.Errorf("update %d: %w", id, common.ErrNotOwner)
	}

	side := existing.Side
	if existing.Price != price {
		b.cancel(id, participant)
		newID := b.resubmit(side, quantity, price, participant)
		return newID, true, nil
	}

	quantityDelta := existing.Quantity - quantity
	if quantityDelta >= 0 {
		// Quantity unchanged or decreased: mutate in place, priority preserved.
		existing.Quantity = quantity
		if level, ok := b.sideIndexFor(side).Get(price); ok {
			level.Quantity -= quantityDelta
		}
		return id, true, nil
	}

	// Quantity increased at the same price: priority is lost by design.
	b.cancel(id, participant)
	newID := b.resubmit(side, quantity, price, participant)
	return newID, true, nil
}

func (b *OrderBook) resubmit(side common.Side, quantity, price int64, participant *common.Participant) int64 {
	order := b.allocate(side, quantity, price, participant)
	b.submit(order)
	return order.ID
}

// Cancel removes id from the book. Unknown ids and owner mismatches are
// silent no-ops (idempotent), since callers routinely race cancel against an
// in-flight match.
func (b *OrderBook) Cancel(id int64, participant *common.Participant) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancel(id, participant)
}

func (b *OrderBook) cancel(id int64, participant *common.Participant) {
	order, ok := b.reg.get(id)
	if !ok || order.Participant != participant {
		return
	}

	side := b.sideIndexFor(order.Side)
	if level, ok := side.Get(order.Price); ok {
		level.Quantity -= order.Quantity
		if level.Quantity <= 0 {
			side.Delete(order.Price)
		}
	}
	b.reg.remove(id)
	b.logger.Debug().Int64("id", id).Msg("cancel")
}

func (b *OrderBook) sideIndexFor(side common.Side) *SideIndex {
	if side == common.Buy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) opposingIndex(side common.Side) *SideIndex {
	if side == common.Buy {
		return b.asks
	}
	return b.bids
}

// String renders bids/asks/mid-price, mirroring the Python original's
// __str__ for debug logging and the CLI's observable dump.
func (b *OrderBook) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "OrderBook %s\n", b.asset)
	if mid, ok := b.MidPrice(); ok {
		fmt.Fprintf(&sb, "Mid-price: %.2f\n", mid)
	} else {
		sb.WriteString("Mid-price: n/a\n")
	}
	sb.WriteString("BIDS:\n")
	for _, level := range b.bids.Items() {
		fmt.Fprintf(&sb, "    %d @ %s%d\n", level.Quantity, b.currencySymbol, level.Price)
	}
	sb.WriteString("ASKS:\n")
	for _, level := range b.asks.Items() {
		fmt.Fprintf(&sb, "    %d @ %s%d\n", level.Quantity, b.currencySymbol, level.Price)
	}
	return sb.String()
}
