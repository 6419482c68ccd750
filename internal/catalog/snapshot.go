package catalog

import "modacart/internal/domain"

// Snapshot is the catalog state of one successful fetch. It is immutable;
// a re-fetch produces a whole new Snapshot rather than mutating this one.
// Item lookups go through a flat index built once at construction instead of
// walking the audience tree per call.
type Snapshot struct {
	Audiences []domain.Audience

	index map[string]indexEntry
}

type indexEntry struct {
	inStock int
	product *domain.Product
	color   *domain.Color
}

func NewSnapshot(audiences []domain.Audience) *Snapshot {
	s := &Snapshot{Audiences: audiences, index: map[string]indexEntry{}}
	for ai := range s.Audiences {
		for ci := range s.Audiences[ai].Categories {
			cat := &s.Audiences[ai].Categories[ci]
			for pi := range cat.Products {
				p := &cat.Products[pi]
				for coi := range p.Colors {
					col := &p.Colors[coi]
					for _, it := range col.Items {
						s.index[it.ID] = indexEntry{inStock: it.InStock, product: p, color: col}
					}
				}
			}
		}
	}
	return s
}

// StockLevel reports the available quantity for a stock-keeping item.
// ok is false when the item exists nowhere in the tree.
func (s *Snapshot) StockLevel(itemID string) (int, bool) {
	e, ok := s.index[itemID]
	return e.inStock, ok
}

// Product resolves the product an item belongs to.
func (s *Snapshot) Product(itemID string) (*domain.Product, bool) {
	e, ok := s.index[itemID]
	return e.product, ok
}

// Color resolves the color an item belongs to.
func (s *Snapshot) Color(itemID string) (*domain.Color, bool) {
	e, ok := s.index[itemID]
	return e.color, ok
}

// Items reports how many stock-keeping items the snapshot indexes.
func (s *Snapshot) Items() int { return len(s.index) }
