package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/isuruAnjula/E-Commerce-Website/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT id, prod_name, prod_price, prod_image, prod_description
	  FROM products
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Insert(ctx context.Context, name string, price float64, image, description string) error {
	_, err := r.db.ExecContext(ctx, `
	  INSERT INTO products(prod_name, prod_price, prod_image, prod_description)
	  VALUES(?, ?, ?, ?)
	`, name, price, image, description)
	return err
}

// Update touches name/price/description only; the image is set once at
// creation. Zero rows affected is not an error (update-if-present).
func (r *ProductRepo) Update(ctx context.Context, id int64, name string, price float64, description string) error {
	_, err := r.db.ExecContext(ctx, `
	  UPDATE products SET prod_name = ?, prod_price = ?, prod_description = ?
	  WHERE id = ?
	`, name, price, description, id)
	return err
}

// Delete-if-present; a missing row is not an error.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}
