package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productSelect = `SELECT item_id, product_code, product_name, price FROM product_master WHERE product_code = ?`

func TestProductRepoGetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(productSelect)).
		WithArgs(int64(1234567890)).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "product_code", "product_name", "price"}).
			AddRow(1, 1234567890, "ソフラン", 300))

	p, err := repo.GetByCode(context.Background(), 1234567890)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ItemID)
	assert.Equal(t, int64(1234567890), p.ProductCode)
	assert.Equal(t, "ソフラン", p.ProductName)
	assert.Equal(t, int64(300), p.Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoGetByCodeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(productSelect)).
		WithArgs(int64(999999999)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByCode(context.Background(), 999999999)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoGetByCodeDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepo(db)

	driverErr := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(productSelect)).
		WithArgs(int64(1234567890)).
		WillReturnError(driverErr)

	_, err = repo.GetByCode(context.Background(), 1234567890)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
