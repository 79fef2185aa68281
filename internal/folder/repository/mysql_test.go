package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/kayumanis/furniture-order-service/internal/folder"
	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
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

func TestCreateDuplicateName(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_folders (name, description, color)")).
		WithArgs("Chairs", nil, nil).
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Chairs'"})

	_, err := repo.Create(context.Background(), &model.Folder{Name: "Chairs"})
	assert.ErrorIs(t, err, folder.ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_folders")).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), &model.Folder{Name: "Tables"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestFindAllCountsProducts(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.name LIKE ? GROUP BY f.id ORDER BY f.name")).
		WithArgs("%cha%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "color", "product_count"}).
			AddRow(1, "Chairs", nil, "#ff0000", 3))

	folders, err := repo.FindAll(context.Background(), &dto.FolderFilters{SearchQuery: "cha"})
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, int64(3), folders[0].ProductCount)
	assert.Equal(t, "#ff0000", *folders[0].Color)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDMissing(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM product_folders WHERE id = ? LIMIT 1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	f, err := repo.FindByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestCountProducts(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE folder_id = ?")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountProducts(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
