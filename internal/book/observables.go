package book

import "lob/internal/common"

// LevelView is a read-only copy of a price level's price and aggregate
// quantity, returned by the observable accessors so callers can't mutate the
// live book through them.
type LevelView struct {
	Price    int64
	Quantity int64
}

func viewOf(level *PriceLevel, ok bool) (LevelView, bool) {
	if !ok {
		return LevelView{}, false
	}
	return LevelView{Price: level.Price, Quantity: level.Quantity}, true
}

// BestBid returns the best (highest) resting bid level, ungated: a
// concurrent mutator may make this momentarily stale. Use Snapshot for a
// consistent read.
func (b *OrderBook) BestBid() (LevelView, bool) {
	return viewOf(b.bids.Best())
}

// BestAsk returns the best (lowest) resting ask level, ungated.
func (b *OrderBook) BestAsk() (LevelView, bool) {
	return viewOf(b.asks.Best())
}

// MidPrice is the arithmetic mean of best bid and best ask prices, if both
// are present.
func (b *OrderBook) MidPrice() (float64, bool) {
	bid, bidOK := b.BestBid()
	ask, askOK := b.BestAsk()
	if !bidOK || !askOK {
		return 0, false
	}
	return float64(bid.Price+ask.Price) / 2, true
}

// MicroPrice is the liquidity-weighted mix of best bid/ask prices: each
// side's price is weighted by the *opposite* side's resting quantity, so it
// leans toward whichever side has less depth in front of it.
func (b *OrderBook) MicroPrice() (float64, bool) {
	bid, bidOK := b.BestBid()
	ask, askOK := b.BestAsk()
	if !bidOK || !askOK {
		return 0, false
	}
	denom := bid.Quantity + ask.Quantity
	if denom == 0 {
		return 0, false
	}
	return float64(bid.Quantity*ask.Price+ask.Quantity*bid.Price) / float64(denom), true
}

// MatchHistory returns the recorded fills in chronological order. Empty
// (never nil-panicking) when RecordMatchHistory was not enabled at
// construction.
func (b *OrderBook) MatchHistory() []common.Fill {
	b.mu.Lock()
	defer b.mu.Unlock()

	history := make([]common.Fill, len(b.matchHistory))
	copy(history, b.matchHistory)
	return history
}

// MatchHistoryPrices returns just the trade price of each recorded fill, in
// the same order as MatchHistory.
func (b *OrderBook) MatchHistoryPrices() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	prices := make([]int64, len(b.matchHistory))
	for i, fill := range b.matchHistory {
		prices[i] = fill.Price
	}
	return prices
}

// Snapshot is the "gated read variant" spec.md §5 recommends for callers
// that need best bid/ask/mid/micro to be mutually consistent.
type Snapshot struct {
	BestBid    LevelView
	HasBid     bool
	BestAsk    LevelView
	HasAsk     bool
	MidPrice   float64
	HasMid     bool
	MicroPrice float64
	HasMicro   bool
}

// Snapshot takes the mutation lock and returns a single consistent view of
// every observable.
func (b *OrderBook) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	var s Snapshot
	s.BestBid, s.HasBid = viewOf(b.bids.Best())
	s.BestAsk, s.HasAsk = viewOf(b.asks.Best())
	if s.HasBid && s.HasAsk {
		s.MidPrice = float64(s.BestBid.Price+s.BestAsk.Price) / 2
		s.HasMid = true
		denom := s.BestBid.Quantity + s.BestAsk.Quantity
		if denom != 0 {
			s.MicroPrice = float64(s.BestBid.Quantity*s.BestAsk.Price+s.BestAsk.Quantity*s.BestBid.Price) / float64(denom)
			s.HasMicro = true
		}
	}
	return s
}
