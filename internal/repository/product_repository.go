package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/asukapos/pos-backend/internal/model"
)

// ProductRepo provides read access to the product master.  The catalog
// is reference data: this repository only ever selects, the bootstrap
// routine owns inserts.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo returns a new ProductRepo bound to the given database.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

// GetByCode returns the catalog row whose product_code equals code.
// The four columns are returned exactly as stored, with no
// transformation.  When no row matches, ErrProductNotFound is
// returned; any other error comes straight from the driver.
func (r *ProductRepo) GetByCode(ctx context.Context, code int64) (*model.Product, error) {
	const q = `SELECT item_id, product_code, product_name, price FROM product_master WHERE product_code = ?`
	var p model.Product
	err := r.db.QueryRowContext(ctx, q, code).Scan(&p.ItemID, &p.ProductCode, &p.ProductName, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}
