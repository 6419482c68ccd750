// Package modacart is the cart/checkout engine of the shopping client: it
// keeps the locally persisted cart consistent with the remotely fetched
// catalog, mediates quantity edits against stock levels and finalizes
// checkout. Screens sit on top of Engine; everything below it lives in
// internal packages.
package modacart

import (
	"context"
	"encoding/hex"

	"github.com/go-faster/errors"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modacart/internal/catalog"
	"modacart/internal/config"
	"modacart/internal/repos"
	"modacart/internal/services"
)

type Engine struct {
	Catalog  *catalog.Client
	Cart     *services.CartService
	Pricer   services.Pricer
	Profile  *services.ProfileService
	Checkout *services.CheckoutService
	Images   *services.ImageService

	db *sqlx.DB
}

// New wires the engine from environment configuration: sqlite-backed cart
// and profile storage, the catalog client and the image cache.
func New() (*Engine, error) {
	cfg := config.Load()

	db, err := repos.OpenDB(cfg.CartDB)
	if err != nil {
		return nil, errors.Wrap(err, "open cart db")
	}
	key, err := hex.DecodeString(cfg.ProfileKeyHex)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "profile key")
	}
	profileRepo, err := repos.NewProfileRepo(db, key)
	if err != nil {
		db.Close()
		return nil, err
	}
	cache, err := repos.NewDiskImageCache(cfg.ImageCacheDir)
	if err != nil {
		db.Close()
		return nil, err
	}

	client := catalog.NewClient(cfg.CatalogBaseURL, cfg.HTTPTimeout)
	cartRepo := repos.NewCartRepo(db)
	profileSvc := services.NewProfileService(profileRepo)

	return &Engine{
		Catalog:  client,
		Cart:     services.NewCartService(cartRepo),
		Profile:  profileSvc,
		Checkout: services.NewCheckoutService(cartRepo, profileSvc),
		Images:   services.NewImageService(client, cache),
		db:       db,
	}, nil
}

// RefreshResult is what a cart or checkout screen needs after a catalog
// load: the fresh snapshot, what reconciliation removed and the new total.
type RefreshResult struct {
	Snapshot   *catalog.Snapshot
	Reconciled services.ReconcileResult
	Total      decimal.Decimal
}

// Refresh runs the load-catalog flow end to end: fetch a snapshot, reconcile
// the persisted cart against it and recompute the total. A cancelled ctx
// aborts before any cart mutation.
func (e *Engine) Refresh(ctx context.Context) (RefreshResult, error) {
	snap, err := e.Catalog.Fetch(ctx)
	if err != nil {
		return RefreshResult{}, err
	}
	rec, err := e.Cart.Reconcile(ctx, snap)
	if err != nil {
		return RefreshResult{}, err
	}
	total, _, err := e.Pricer.CartTotal(rec.Remaining, snap)
	if err != nil {
		return RefreshResult{}, err
	}
	return RefreshResult{Snapshot: snap, Reconciled: rec, Total: total}, nil
}

func (e *Engine) Close() error { return e.db.Close() }
