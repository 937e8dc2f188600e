package book

import "github.com/tidwall/btree"

// SideIndex is an ordered price->PriceLevel map for one side of the book,
// backed by a B-tree (component C). Bids and asks each get their own
// comparator so that Best always returns the tree's Min element: bids use a
// descending-by-price comparator (so the highest price sorts first), asks an
// ascending one (so the lowest price sorts first).
type SideIndex struct {
	tree *btree.BTreeG[*PriceLevel]
}

func newBidIndex() *SideIndex {
	return &SideIndex{
		tree: btree.NewBTreeG(func(a, b *PriceLevel) bool {
			return a.Price > b.Price
		}),
	}
}

func newAskIndex() *SideIndex {
	return &SideIndex{
		tree: btree.NewBTreeG(func(a, b *PriceLevel) bool {
			return a.Price < b.Price
		}),
	}
}

// Best returns the best-priced level for this side, or (nil, false) if the
// side is empty. The returned pointer is mutable in place (Quantity, Orders).
func (s *SideIndex) Best() (*PriceLevel, bool) {
	return s.tree.MinMut()
}

// Get returns the level resting at price, if any.
func (s *SideIndex) Get(price int64) (*PriceLevel, bool) {
	return s.tree.GetMut(&PriceLevel{Price: price})
}

// Insert adds or replaces the level keyed at level.Price.
func (s *SideIndex) Insert(level *PriceLevel) {
	s.tree.Set(level)
}

// Delete removes the level at price, if indexed (I5: no zero-quantity level
// stays indexed).
func (s *SideIndex) Delete(price int64) {
	s.tree.Delete(&PriceLevel{Price: price})
}

// Len reports how many distinct price levels are indexed.
func (s *SideIndex) Len() int {
	return s.tree.Len()
}

// Items returns every indexed level in price priority order (best first).
// Intended for inspection/tests, not the matching hot path.
func (s *SideIndex) Items() []*PriceLevel {
	items := make([]*PriceLevel, 0, s.tree.Len())
	s.tree.Scan(func(level *PriceLevel) bool {
		items = append(items, level)
		return true
	})
	return items
}
