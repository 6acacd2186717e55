package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/isuruAnjula/E-Commerce-Website/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) View(ctx context.Context) ([]domain.CartLine, error) {
	out := []domain.CartLine{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT c.prod_id, p.id, p.prod_name, p.prod_price, p.prod_image, c.prod_qty
	  FROM cart c JOIN products p ON c.prod_id = p.id
	  ORDER BY c.prod_id
	`)
	return out, err
}

// Upsert inserts a new entry at quantity 1 or bumps an existing one, as a
// single statement so concurrent adds cannot double-insert or lose a bump.
// Returns true when the entry was created.
func (r *CartRepo) Upsert(ctx context.Context, prodID int64) (bool, error) {
	var qty int
	err := r.db.GetContext(ctx, &qty, `
	  INSERT INTO cart(prod_id, prod_qty) VALUES(?, 1)
	  ON CONFLICT(prod_id) DO UPDATE SET prod_qty = prod_qty + 1
	  RETURNING prod_qty
	`, prodID)
	return qty == 1, err
}

// Increment bumps the quantity in place. Zero rows affected means no entry.
func (r *CartRepo) Increment(ctx context.Context, prodID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	  UPDATE cart SET prod_qty = prod_qty + 1 WHERE prod_id = ?
	`, prodID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Decrement carries the floor guard in the statement itself; it never
// drops a quantity below 1. Zero rows affected means either no entry or
// an entry already at the floor.
func (r *CartRepo) Decrement(ctx context.Context, prodID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	  UPDATE cart SET prod_qty = prod_qty - 1
	  WHERE prod_id = ? AND prod_qty > 1
	`, prodID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Qty returns the current quantity; sql.ErrNoRows when no entry exists.
func (r *CartRepo) Qty(ctx context.Context, prodID int64) (int, error) {
	var qty int
	err := r.db.GetContext(ctx, &qty, `SELECT prod_qty FROM cart WHERE prod_id = ?`, prodID)
	return qty, err
}

// Delete-if-present; a missing entry is not an error.
func (r *CartRepo) Delete(ctx context.Context, prodID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE prod_id = ?`, prodID)
	return err
}
