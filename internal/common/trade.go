package common

import (
	"fmt"
	"time"
)

// Fill is a deep-copy snapshot of one match: the incoming order and the
// resting order it crossed, captured at the moment of the trade (quantities
// reflect what remained immediately before this fill's decrement).
type Fill struct {
	Incoming  Order
	Resting   Order
	Quantity  int64
	Price     int64
	Timestamp time.Time
}

func (f Fill) String() string {
	return fmt.Sprintf(
		"Fill(incoming=%s, resting=%s, quantity=%d, price=%d, at=%s)",
		f.Incoming.String(), f.Resting.String(), f.Quantity, f.Price,
		f.Timestamp.Format(time.RFC3339),
	)
}
