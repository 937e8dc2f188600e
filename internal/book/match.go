package book

import (
	"time"

	"lob/internal/common"
	"lob/internal/settlement"
)

// submit runs order through the matching engine (component G): it walks the
// opposing side's best level while it still crosses, consuming liquidity
// under price-time priority, then deposits whatever quantity remains on the
// order's own side. Caller must hold b.mu.
func (b *OrderBook) submit(order *common.Order) {
	opposing := b.opposingIndex(order.Side)

	for order.Quantity > 0 {
		level, ok := opposing.Best()
		if !ok || !crosses(order, level) {
			break
		}
		b.matchLevel(order, level, opposing)
	}

	if order.Quantity > 0 {
		b.deposit(order)
	}
}

// crosses reports whether order is marketable against level: a bid crosses
// an ask when bid.price >= ask.price, and an ask crosses a bid when
// ask.price <= bid.price.
func crosses(order *common.Order, level *PriceLevel) bool {
	if order.Side == common.Buy {
		return order.Price >= level.Price
	}
	return order.Price <= level.Price
}

// matchLevel consumes level's resting liquidity against order while both
// have quantity left and level's price still crosses. Tombstones (ids left
// in the queue by a prior cancel) are skipped and discarded without
// affecting level.Quantity, which already excludes them.
func (b *OrderBook) matchLevel(order *common.Order, level *PriceLevel, opposing *SideIndex) {
	for order.Quantity > 0 && level.Quantity > 0 && level.Orders.Len() > 0 {
		headID, ok := level.Orders.PeekFront()
		if !ok {
			break
		}

		head, ok := b.reg.get(headID)
		if !ok {
			level.popLeft()
			continue
		}

		traded := min(order.Quantity, head.Quantity)
		tradePrice := head.Price

		if b.recordMatchHistory {
			b.matchHistory = append(b.matchHistory, common.Fill{
				Incoming:  *order,
				Resting:   *head,
				Quantity:  traded,
				Price:     tradePrice,
				Timestamp: time.Now(),
			})
		}

		settlement.Apply(order, head, b.asset, traded, tradePrice)

		order.Quantity -= traded
		head.Quantity -= traded
		level.Quantity -= traded

		b.logger.Debug().
			Int64("price", tradePrice).
			Int64("quantity", traded).
			Int64("taker_id", order.ID).
			Int64("maker_id", head.ID).
			Msg("fill")

		if head.Quantity == 0 {
			level.popLeft()
			b.reg.remove(head.ID)
		}

		if level.Quantity <= 0 {
			opposing.Delete(level.Price)
			break
		}
	}
}

// deposit inserts order's residual quantity into the registry and its own
// side's index, creating the price level lazily if needed. Order is never
// inserted into the registry before this point — a fully-consumed order is
// terminal and never rests.
func (b *OrderBook) deposit(order *common.Order) {
	if ok := b.reg.insert(order); !ok {
		panic(common.ErrDuplicateID)
	}

	side := b.sideIndexFor(order.Side)
	if level, ok := side.Get(order.Price); ok {
		level.append(order.ID, order.Quantity)
		return
	}

	level := newPriceLevel(order.Price)
	level.append(order.ID, order.Quantity)
	side.Insert(level)
}
