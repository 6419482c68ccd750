package domain

import "github.com/shopspring/decimal"

// The catalog is a five-level tree: audiences own categories, categories own
// products, products own colors, colors own the purchasable items. The whole
// tree is replaced wholesale on every successful fetch and never mutated in
// place.

type Audience struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Material    string          `json:"material"`
	Information string          `json:"information"`
	Styles      []string        `json:"styles"`
	Colors      []Color         `json:"colors"`
}

type Color struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}

// CatalogItem is the only directly purchasable unit: one size of one color
// of one product.
type CatalogItem struct {
	ID      string `json:"id"`
	Size    string `json:"size"`
	InStock int    `json:"inStock"`
}
