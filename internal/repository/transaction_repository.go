package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/asukapos/pos-backend/internal/model"
)

// TransactionRepo persists purchase transactions: one header row in
// transactions plus zero or more detail rows in transaction_details.
// The multi-statement write is always performed inside a single
// database transaction so that a header can never be observed without
// its full detail set.
type TransactionRepo struct {
	db *sql.DB
}

// NewTransactionRepo returns a new TransactionRepo bound to the given database.
func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// DB exposes the underlying handle so callers can begin transactions
// that span repository methods.
func (r *TransactionRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a new transaction header within the scope of an
// existing transaction.  The total amount is written as 0; the caller
// updates it with UpdateTotalTx once the details are in.  The
// generated id is populated on the provided record.  The caller must
// commit or rollback the transaction.
func (r *TransactionRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *model.Transaction) error {
	const q = `INSERT INTO transactions (transaction_date, cashier_code, store_code, pos_id, total_amount) VALUES (?, ?, ?, ?, 0)`
	result, err := tx.ExecContext(ctx, q, rec.TransactionDate, rec.CashierCode, rec.StoreCode, rec.POSID)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// CreateDetailTx inserts one detail row within the scope of an
// existing transaction.  The caller supplies the transaction id and
// the 1-based detail id; rows are inserted one per line item, in
// submission order.
func (r *TransactionRepo) CreateDetailTx(ctx context.Context, tx *sql.Tx, d *model.TransactionDetail) error {
	const q = `INSERT INTO transaction_details (transaction_id, detail_id, item_id, product_code, product_name, price) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, d.TransactionID, d.DetailID, d.ItemID, d.ProductCode, d.ProductName, d.Price)
	return err
}

// UpdateTotalTx writes the final total amount onto the header row
// within the scope of an existing transaction.
func (r *TransactionRepo) UpdateTotalTx(ctx context.Context, tx *sql.Tx, transactionID, total int64) error {
	const q = `UPDATE transactions SET total_amount = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, total, transactionID)
	return err
}

// Record atomically persists one purchase: it inserts the header with
// a placeholder total, inserts each item as a detail row keyed
// (header id, 1..N in submission order), accumulates the integer sum
// of the item prices, writes the sum onto the header and commits.
// Any failure rolls the whole unit of work back, so no header or
// partial detail set survives.  An empty item list is accepted and
// produces a header with total 0 and no detail rows.  On success the
// computed total is returned and rec.ID and rec.TotalAmount are
// populated.
func (r *TransactionRepo) Record(ctx context.Context, rec *model.Transaction, items []model.TransactionDetail) (int64, error) {
	if rec.TransactionDate.IsZero() {
		rec.TransactionDate = time.Now().UTC()
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := r.CreateTx(ctx, tx, rec); err != nil {
		return 0, err
	}
	var total int64
	for i := range items {
		d := items[i]
		d.TransactionID = rec.ID
		d.DetailID = int64(i + 1)
		if err := r.CreateDetailTx(ctx, tx, &d); err != nil {
			return 0, err
		}
		total += d.Price
	}
	if err := r.UpdateTotalTx(ctx, tx, rec.ID, total); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	rec.TotalAmount = total
	return total, nil
}
