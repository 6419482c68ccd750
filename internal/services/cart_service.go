package services

import (
	"context"
	"sync"

	"modacart/internal/catalog"
	"modacart/internal/domain"
	applog "modacart/internal/log"
	"modacart/internal/repos"
)

// EditOutcome is the result of a quantity-edit request. These are ordinary
// decision branches for the caller, not errors.
type EditOutcome int

const (
	// EditApplied means the new count was stored.
	EditApplied EditOutcome = iota
	// EditCeilingReached means the request exceeded available stock and the
	// stored count is unchanged.
	EditCeilingReached
	// EditRemovalPending means the count would drop to zero; nothing is
	// stored until the removal is confirmed.
	EditRemovalPending
)

// ReconcileResult reports what a reconciliation pass changed. Removed > 0 is
// a reportable condition the caller surfaces as a notice, not an error.
type ReconcileResult struct {
	Removed   int
	Remaining *domain.Cart
}

type CartService struct {
	Carts *repos.CartRepo

	mu      sync.Mutex
	pending map[string]struct{} // lines awaiting removal confirmation
}

func NewCartService(carts *repos.CartRepo) *CartService {
	return &CartService{Carts: carts, pending: map[string]struct{}{}}
}

// Add puts one unit of the item in the cart. Re-adding an item already in
// the cart increments its line rather than creating a duplicate.
func (s *CartService) Add(itemID string) error {
	return s.Carts.AddItem(itemID)
}

func (s *CartService) Fetch() (*domain.Cart, error) {
	return s.Carts.FetchCart()
}

// Reconcile aligns the persisted cart with the latest catalog snapshot.
// Lines whose item is gone from the catalog or has zero stock are removed.
// Counts above the current stock level are left alone; clamping happens only
// on explicit quantity edits. Cancelling ctx before the removal leaves the
// cart exactly as it was.
func (s *CartService) Reconcile(ctx context.Context, snap *catalog.Snapshot) (ReconcileResult, error) {
	cart, err := s.Carts.FetchCart()
	if err != nil {
		return ReconcileResult{}, err
	}

	var doomed []string
	for _, line := range cart.Items {
		if stock, ok := snap.StockLevel(line.ItemID); !ok || stock == 0 {
			doomed = append(doomed, line.ItemID)
		}
	}
	if err := ctx.Err(); err != nil {
		return ReconcileResult{}, err
	}
	if len(doomed) == 0 {
		return ReconcileResult{Remaining: cart}, nil
	}

	removed, err := s.Carts.RemoveItems(doomed)
	if err != nil {
		return ReconcileResult{}, err
	}
	remaining, err := s.Carts.FetchCart()
	if err != nil {
		return ReconcileResult{}, err
	}
	applog.Info("cart.reconcile", map[string]any{"removed": removed, "remaining": remaining.Len()})
	return ReconcileResult{Removed: removed, Remaining: remaining}, nil
}

// RequestCount drives the quantity-edit state machine for one line:
//
//	requested within [1, stock]  -> EditApplied, count stored
//	requested above stock        -> EditCeilingReached, store untouched
//	requested <= 0               -> EditRemovalPending, store untouched
//
// Decrements that keep the count >= 1 never consult stock. A pending removal
// mutates nothing until ConfirmRemoval; CancelRemoval abandons it.
func (s *CartService) RequestCount(itemID string, requested int, snap *catalog.Snapshot) (EditOutcome, error) {
	line, err := s.Carts.Line(itemID)
	if err != nil {
		return EditApplied, err
	}

	if requested <= 0 {
		s.mu.Lock()
		s.pending[itemID] = struct{}{}
		s.mu.Unlock()
		return EditRemovalPending, nil
	}

	if requested > line.Count {
		stock, ok := snap.StockLevel(itemID)
		if !ok {
			stock = 0
		}
		if requested > stock {
			applog.Info("cart.edit.ceiling", map[string]any{"item": itemID, "requested": requested, "stock": stock})
			return EditCeilingReached, nil
		}
	}

	if err := s.Carts.EditCount(itemID, requested); err != nil {
		return EditApplied, err
	}
	return EditApplied, nil
}

// ConfirmRemoval applies a user-confirmed deletion of a line.
func (s *CartService) ConfirmRemoval(itemID string) error {
	s.mu.Lock()
	delete(s.pending, itemID)
	s.mu.Unlock()
	return s.Carts.RemoveItem(itemID)
}

// CancelRemoval abandons a pending deletion; the stored count was never
// touched, so there is nothing to restore.
func (s *CartService) CancelRemoval(itemID string) {
	s.mu.Lock()
	delete(s.pending, itemID)
	s.mu.Unlock()
}

// RemovalPending reports whether a line is parked awaiting confirmation.
func (s *CartService) RemovalPending(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[itemID]
	return ok
}
