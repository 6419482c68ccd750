package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"modacart/internal/catalog"
	"modacart/internal/domain"
	"modacart/internal/repos"
)

func memdb(t *testing.T) *repos.CartRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewCartRepo(db)
}

type fixtureItem struct {
	id    string
	price string
	stock int
}

// catalogWith builds a one-audience snapshot carrying one product per item.
func catalogWith(items ...fixtureItem) *catalog.Snapshot {
	prods := make([]domain.Product, 0, len(items))
	for i, it := range items {
		prods = append(prods, domain.Product{
			ID:    fmt.Sprintf("p-%d", i),
			Name:  "Product " + it.id,
			Brand: "Verano",
			Price: decimal.RequireFromString(it.price),
			Colors: []domain.Color{{
				ID:    "c-" + it.id,
				Name:  "Black",
				Items: []domain.CatalogItem{{ID: it.id, Size: "M", InStock: it.stock}},
			}},
		})
	}
	return catalog.NewSnapshot([]domain.Audience{{
		ID:   "women",
		Name: "Women",
		Categories: []domain.Category{{
			ID:       "dresses",
			Name:     "Dresses",
			Products: prods,
		}},
	}})
}
