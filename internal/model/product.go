package model

// Product is one row of the product master (the sellable catalog).
// Rows are reference data created by the bootstrap routine and are
// never mutated by the transactional API.  The product code is the
// external identifier scanned at the register; item_id is the
// surrogate key assigned by the database.
//
// Fields:
//  ItemID      – product_master.item_id (auto increment)
//  ProductCode – product_master.product_code (scanned barcode value)
//  ProductName – product_master.product_name (display string)
//  Price       – product_master.price (smallest currency unit)
type Product struct {
	ItemID      int64  `json:"item_id"`      // product_master.item_id
	ProductCode int64  `json:"product_code"` // product_master.product_code
	ProductName string `json:"product_name"` // product_master.product_name
	Price       int64  `json:"price"`        // product_master.price
}
