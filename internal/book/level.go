package book

import "lob/internal/queue"

// PriceLevel is the aggregate resting at one price: a time-ordered FIFO of
// order ids plus a cached total quantity. The cache is maintained by the
// caller (OrderBook/matching engine) since a level cannot itself consult the
// registry to tell a live order apart from a tombstone.
type PriceLevel struct {
	Price    int64
	Orders   queue.Queue
	Quantity int64
}

func newPriceLevel(price int64) *PriceLevel {
	return &PriceLevel{Price: price}
}

// append pushes orderID to the back of the level and grows Quantity by
// quantity.
func (l *PriceLevel) append(orderID int64, quantity int64) {
	l.Orders.PushBack(orderID)
	l.Quantity += quantity
}

// popLeft pops the id at the front of the level. The caller is responsible
// for decrementing Quantity by that order's remaining quantity, since the
// level has no way to distinguish a live order from a tombstone on its own.
func (l *PriceLevel) popLeft() int64 {
	return l.Orders.PopFront()
}
