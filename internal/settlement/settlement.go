// Package settlement implements the optional per-fill balance and inventory
// update (component H): for each matched quantity at a trade price, the
// incoming order's participant and the resting order's participant have
// their cash balance and asset inventory adjusted by equal and opposite
// amounts.
package settlement

import "lob/internal/common"

// Apply updates incoming's and resting's participants (if set) for a fill of
// quantity units at price, on the given asset. A nil Participant on either
// side is simply skipped — orders are allowed to have no settlement target.
//
// Sign convention: a buyer's balance falls by price*quantity and inventory
// rises by quantity; a seller sees the opposite. Grounded on the original
// Python engine's order_multiplier/matched_order_multiplier pair, which this
// renders as an explicit per-side sign rather than a shared multiplier.
func Apply(incoming, resting *common.Order, asset string, quantity, price int64) {
	applyOne(incoming, asset, quantity, price, signFor(incoming.Side))
	applyOne(resting, asset, quantity, price, -signFor(incoming.Side))
}

func signFor(side common.Side) int64 {
	if side == common.Buy {
		return 1
	}
	return -1
}

func applyOne(order *common.Order, asset string, quantity, price, sign int64) {
	p := order.Participant
	if p == nil {
		return
	}
	p.Balance += -sign * price * quantity
	p.Inventory[asset] += sign * quantity
}
