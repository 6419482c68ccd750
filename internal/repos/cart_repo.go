package repos

import (
	"database/sql"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"modacart/internal/domain"
)

// ErrLineNotFound is returned when a mutation targets an item id that has no
// persisted cart line.
var ErrLineNotFound = errors.New("cart: line not found")

// ErrBadCount is returned for counts below 1; a line that should drop to
// zero is removed, never stored at zero.
var ErrBadCount = errors.New("cart: count must be >= 1")

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// AddItem creates a line with count 1 on first add and increments the
// existing line otherwise. Lines stay unique per item id.
func (r *CartRepo) AddItem(itemID string) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(id,item_id,count,created_at)
		VALUES(?,?,1,CURRENT_TIMESTAMP)
		ON CONFLICT(item_id) DO UPDATE
		SET count = cart_items.count + 1, updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), itemID)
	return err
}

// FetchCart returns every line in insertion order. The result is never nil
// on success: an empty cart is a Cart with no items.
func (r *CartRepo) FetchCart() (*domain.Cart, error) {
	items := []domain.CartItem{}
	if err := r.db.Select(&items, `
	  SELECT id, item_id, count FROM cart_items ORDER BY rowid
	`); err != nil {
		return nil, err
	}
	return &domain.Cart{Items: items}, nil
}

// Line fetches a single cart line by item id.
func (r *CartRepo) Line(itemID string) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, `SELECT id, item_id, count FROM cart_items WHERE item_id = ?`, itemID)
	if err == sql.ErrNoRows {
		return it, ErrLineNotFound
	}
	return it, err
}

// EditCount sets the stored count for an existing line.
func (r *CartRepo) EditCount(itemID string, count int) error {
	if count < 1 {
		return ErrBadCount
	}
	res, err := r.db.Exec(`
		UPDATE cart_items SET count = ?, updated_at = CURRENT_TIMESTAMP
		WHERE item_id = ?
	`, count, itemID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrLineNotFound
	}
	return nil
}

// RemoveItem deletes the line if present; removing an absent line is a no-op.
func (r *CartRepo) RemoveItem(itemID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE item_id = ?`, itemID)
	return err
}

// RemoveItems bulk-deletes the given item ids and reports how many lines
// actually went away.
func (r *CartRepo) RemoveItems(itemIDs []string) (int, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`DELETE FROM cart_items WHERE item_id IN (?)`, itemIDs)
	if err != nil {
		return 0, err
	}
	res, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Clear drops every line. Re-running a clear is a no-op, so a retry after a
// reported failure is always safe.
func (r *CartRepo) Clear() error {
	_, err := r.db.Exec(`DELETE FROM cart_items`)
	return err
}
