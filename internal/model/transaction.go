package model

import "time"

// Defaults applied to a purchase request when the caller omits the
// corresponding field.  The cashier sentinel is the fixed ten-digit
// value used by unattended registers.
const (
	DefaultCashierCode = "9999999999"
	DefaultStoreCode   = "30"
	DefaultPOSID       = "90"
)

// Transaction is the header record of one purchase.  The total amount
// is written twice during recording: first as a 0 placeholder when the
// header is inserted, then as the final sum once every detail row has
// been written.  It is never mutated after the recording transaction
// commits.
//
// Fields:
//  ID              – transactions.id (auto increment)
//  TransactionDate – transactions.transaction_date
//  CashierCode     – transactions.cashier_code
//  StoreCode       – transactions.store_code
//  POSID           – transactions.pos_id
//  TotalAmount     – transactions.total_amount (sum of detail prices)
type Transaction struct {
	ID              int64     // transactions.id
	TransactionDate time.Time // transactions.transaction_date
	CashierCode     string    // transactions.cashier_code
	StoreCode       string    // transactions.store_code
	POSID           string    // transactions.pos_id
	TotalAmount     int64     // transactions.total_amount
}

// TransactionDetail is one line item of a purchase.  The item fields
// are a denormalized snapshot of the catalog row at sale time, so the
// detail keeps the price the customer actually paid even if the
// catalog changes later.  DetailID is the 1-based position of the item
// in the submitted list and forms a composite key with TransactionID.
//
// Fields:
//  TransactionID – transaction_details.transaction_id (FK to transactions.id)
//  DetailID      – transaction_details.detail_id (1..N in submission order)
//  ItemID        – transaction_details.item_id
//  ProductCode   – transaction_details.product_code
//  ProductName   – transaction_details.product_name
//  Price         – transaction_details.price
type TransactionDetail struct {
	TransactionID int64  // transaction_details.transaction_id
	DetailID      int64  // transaction_details.detail_id
	ItemID        int64  // transaction_details.item_id
	ProductCode   int64  // transaction_details.product_code
	ProductName   string // transaction_details.product_name
	Price         int64  // transaction_details.price
}
