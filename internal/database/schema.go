package database

import (
	"context"
	"database/sql"

	"github.com/asukapos/pos-backend/internal/model"
)

// DDL statements for the three tables.  CREATE TABLE IF NOT EXISTS
// keeps the bootstrap idempotent.  Detail rows carry a denormalized
// snapshot of the catalog columns so they keep the price at sale time
// even if the catalog changes later.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product_master (
		item_id INT AUTO_INCREMENT PRIMARY KEY,
		product_code BIGINT NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		price INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		transaction_date DATETIME NOT NULL,
		cashier_code VARCHAR(255) NOT NULL,
		store_code VARCHAR(255) NOT NULL,
		pos_id VARCHAR(255) NOT NULL,
		total_amount INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transaction_details (
		transaction_id INT,
		detail_id INT,
		item_id INT,
		product_code BIGINT,
		product_name VARCHAR(255),
		price INT,
		PRIMARY KEY (transaction_id, detail_id),
		FOREIGN KEY (transaction_id) REFERENCES transactions(id)
	)`,
}

// SampleProducts is the demo catalog inserted by the bootstrap binary.
var SampleProducts = []model.Product{
	{ProductCode: 1234567890, ProductName: "ソフラン", Price: 300},
	{ProductCode: 2345678901, ProductName: "タイガー歯ブラシ", Price: 200},
	{ProductCode: 3456789012, ProductName: "四ツ谷サイダー", Price: 160},
	{ProductCode: 4567890123, ProductName: "福島産ほれん草", Price: 188},
	{ProductCode: 4547366694253, ProductName: "米津玄師", Price: 2000},
}

// CreateSchema creates the catalog, header and detail tables if they
// do not exist yet.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts inserts the sample catalog rows and returns the number
// of rows written.
func SeedProducts(ctx context.Context, db *sql.DB) (int, error) {
	const q = `INSERT INTO product_master (product_code, product_name, price) VALUES (?, ?, ?)`
	for _, p := range SampleProducts {
		if _, err := db.ExecContext(ctx, q, p.ProductCode, p.ProductName, p.Price); err != nil {
			return 0, err
		}
	}
	return len(SampleProducts), nil
}

// ListProducts returns every catalog row, used by the bootstrap binary
// to print the table contents before and after seeding.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	const q = `SELECT item_id, product_code, product_name, price FROM product_master ORDER BY item_id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ItemID, &p.ProductCode, &p.ProductName, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
