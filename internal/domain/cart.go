package domain

// CartItem is one persisted cart line: a stock-keeping item reference and a
// quantity. ItemID values are unique within a cart; re-adding an item bumps
// the count of the existing line instead of creating a second one.
type CartItem struct {
	ID     string `db:"id"`
	ItemID string `db:"item_id"`
	Count  int    `db:"count"`
}

// Cart holds every persisted line in insertion order. A nil *Cart means the
// cart has not been fetched yet, which is distinct from a fetched cart with
// no lines.
type Cart struct {
	Items []CartItem
}

func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
