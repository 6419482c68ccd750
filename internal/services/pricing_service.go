package services

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"modacart/internal/catalog"
	"modacart/internal/domain"
	applog "modacart/internal/log"
)

// ErrCartNotLoaded distinguishes "cart never fetched" from an empty cart,
// whose total is simply zero.
var ErrCartNotLoaded = errors.New("pricing: cart not loaded")

// Pricer derives line and cart totals with exact decimal arithmetic; no
// float ever touches a price.
type Pricer struct{}

func (Pricer) LineTotal(line domain.CartItem, p *domain.Product) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(line.Count)))
}

// CartTotal sums line totals over every line that resolves to a product in
// the snapshot. Lines that no longer resolve are skipped with a warning and
// counted in the second return; the sum is never silently truncated.
func (pr Pricer) CartTotal(cart *domain.Cart, snap *catalog.Snapshot) (decimal.Decimal, int, error) {
	if cart == nil {
		return decimal.Zero, 0, ErrCartNotLoaded
	}
	total := decimal.Zero
	skipped := 0
	for _, line := range cart.Items {
		p, ok := snap.Product(line.ItemID)
		if !ok {
			skipped++
			applog.Warn("pricing.unresolved", map[string]any{"item": line.ItemID})
			continue
		}
		total = total.Add(pr.LineTotal(line, p))
	}
	return total, skipped, nil
}
