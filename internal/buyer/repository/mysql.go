package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kayumanis/furniture-order-service/internal/buyer/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Create(ctx context.Context, b *model.Buyer) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `INSERT INTO buyers (name, address) VALUES (:name, :address)`, b)
	if err != nil {
		return 0, fmt.Errorf("failed to insert buyer: %w", err)
	}
	return res.LastInsertId()
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Buyer, error) {
	var b model.Buyer
	err := r.DB.GetContext(ctx, &b, `SELECT * FROM buyers WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context, f *dto.BuyerFilters) ([]model.Buyer, int, error) {
	buyers := []model.Buyer{}
	var count int

	whereClause := ""
	args := []interface{}{}
	if f.SearchQuery != "" {
		whereClause = " WHERE name LIKE ? OR address LIKE ?"
		like := "%" + f.SearchQuery + "%"
		args = append(args, like, like)
	}

	if err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM buyers"+whereClause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count buyers: %w", err)
	}

	query := "SELECT * FROM buyers" + whereClause + " ORDER BY name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}
	if err := r.DB.SelectContext(ctx, &buyers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list buyers: %w", err)
	}

	return buyers, count, nil
}

func (r *MySQLRepository) FindOptions(ctx context.Context, search string, limit int) ([]model.BuyerOption, error) {
	options := []model.BuyerOption{}

	query := "SELECT id, name, address FROM buyers"
	args := []interface{}{}
	if search != "" {
		query += " WHERE name LIKE ? OR address LIKE ?"
		like := "%" + search + "%"
		args = append(args, like, like)
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT %d", limit)

	if err := r.DB.SelectContext(ctx, &options, query, args...); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *MySQLRepository) Update(ctx context.Context, b *model.Buyer) error {
	query := `
        UPDATE buyers
        SET name = :name,
            address = :address,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = :id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, b); err != nil {
		return fmt.Errorf("failed to update buyer: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM buyers WHERE id = ?", id)
	return err
}

func (r *MySQLRepository) CountOrders(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM orders WHERE buyer_id = ?", id)
	return count, err
}
