package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/kayumanis/furniture-order-service/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*MySQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMySQLRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestFindAllFiltersAndPaginates(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products p WHERE (p.km_code LIKE ? OR p.description LIKE ?) AND p.folder_id = ?")).
		WithArgs("%chair%", "%chair%", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.created_at DESC LIMIT 5 OFFSET 10")).
		WithArgs("%chair%", "%chair%", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "km_code", "folder_name"}).
			AddRow(1, "KM-1", "Chairs").
			AddRow(2, "KM-2", nil))

	products, count, err := repo.FindAll(context.Background(), &dto.ProductFilters{
		SearchQuery: "chair",
		FolderID:    3,
		Page:        3,
		PageSize:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	require.Len(t, products, 2)
	assert.Equal(t, "KM-1", products[0].KMCode)
	require.NotNil(t, products[0].FolderName)
	assert.Equal(t, "Chairs", *products[0].FolderName)
	assert.Nil(t, products[1].FolderName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDMissing(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = ? LIMIT 1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := repo.FindByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOrderItems(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM order_items WHERE product_id = ?")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountOrderItems(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
