package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kayumanis/furniture-order-service/internal/folder"
	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/pkg/database/mysql"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Create(ctx context.Context, f *model.Folder) (int64, error) {
	query := `
        INSERT INTO product_folders (name, description, color)
        VALUES (:name, :description, :color)
    `
	res, err := r.DB.NamedExecContext(ctx, query, f)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return 0, folder.ErrDuplicateName
		}
		return 0, fmt.Errorf("failed to insert folder: %w", err)
	}
	return res.LastInsertId()
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Folder, error) {
	var f model.Folder
	query := `SELECT * FROM product_folders WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &f, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context, filters *dto.FolderFilters) ([]model.Folder, error) {
	folders := []model.Folder{}

	query := `
        SELECT f.*, COUNT(p.id) AS product_count
        FROM product_folders f
        LEFT JOIN products p ON f.id = p.folder_id`
	args := []interface{}{}
	if filters != nil && filters.SearchQuery != "" {
		query += ` WHERE f.name LIKE ?`
		args = append(args, "%"+filters.SearchQuery+"%")
	}
	query += ` GROUP BY f.id ORDER BY f.name`

	if err := r.DB.SelectContext(ctx, &folders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

func (r *MySQLRepository) Update(ctx context.Context, f *model.Folder) error {
	query := `
        UPDATE product_folders
        SET name = :name,
            description = :description,
            color = :color,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, f)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return folder.ErrDuplicateName
		}
		return fmt.Errorf("failed to update folder: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM product_folders WHERE id = ?", id)
	return err
}

func (r *MySQLRepository) CountProducts(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM products WHERE folder_id = ?", id)
	return count, err
}
