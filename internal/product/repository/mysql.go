package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/product/dto"
)

const selectProductWithFolder = `
	SELECT p.*, f.name AS folder_name, f.color AS folder_color
	FROM products p
	LEFT JOIN product_folders f ON p.folder_id = f.id`

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	query := `
        INSERT INTO products (
            client_code, client_barcode, client_description, km_code, description, folder_id,
            picture_url, size_width, size_depth, size_height,
            packing_width, packing_depth, packing_height, cbm, color,
            gross_weight, net_weight, total_gw, total_nw, fob_price, total_price, hs_code
        )
        VALUES (
            :client_code, :client_barcode, :client_description, :km_code, :description, :folder_id,
            :picture_url, :size_width, :size_depth, :size_height,
            :packing_width, :packing_depth, :packing_height, :cbm, :color,
            :gross_weight, :net_weight, :total_gw, :total_nw, :fob_price, :total_price, :hs_code
        )
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read product id: %w", err)
	}
	return id, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := selectProductWithFolder + ` WHERE p.id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *MySQLRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*model.Product, error) {
	out := make(map[int64]*model.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	for i := range products {
		out[products[i].ID] = &products[i]
	}
	return out, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.SearchQuery != "" {
		conditions = append(conditions, "(p.km_code LIKE :search OR p.description LIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}
	if f.FolderID > 0 {
		conditions = append(conditions, "p.folder_id = :folder_id")
		args["folder_id"] = f.FolderID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Count
	countQuery, countArgs, err := sqlx.Named("SELECT COUNT(*) FROM products p"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// List
	query := selectProductWithFolder + whereClause + " ORDER BY p.created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &products, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, count, nil
}

func (r *MySQLRepository) FindOptions(ctx context.Context) ([]model.ProductOption, error) {
	options := []model.ProductOption{}
	query := `
        SELECT p.id, p.client_code, p.client_barcode, p.client_description, p.km_code, p.description,
               p.cbm, p.fob_price, p.gross_weight, p.net_weight, p.total_gw, p.total_nw, p.picture_url,
               p.size_width, p.size_depth, p.size_height, p.packing_width, p.packing_depth, p.packing_height,
               p.color, p.folder_id, f.name AS folder_name
        FROM products p
        LEFT JOIN product_folders f ON p.folder_id = f.id
        ORDER BY p.km_code
    `
	if err := r.DB.SelectContext(ctx, &options, query); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *MySQLRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET client_code = :client_code,
            client_barcode = :client_barcode,
            client_description = :client_description,
            km_code = :km_code,
            description = :description,
            folder_id = :folder_id,
            picture_url = :picture_url,
            size_width = :size_width,
            size_depth = :size_depth,
            size_height = :size_height,
            packing_width = :packing_width,
            packing_depth = :packing_depth,
            packing_height = :packing_height,
            cbm = :cbm,
            color = :color,
            gross_weight = :gross_weight,
            net_weight = :net_weight,
            total_gw = :total_gw,
            total_nw = :total_nw,
            fob_price = :fob_price,
            total_price = :total_price,
            hs_code = :hs_code,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}

func (r *MySQLRepository) CountOrderItems(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM order_items WHERE product_id = ?", id)
	if err != nil {
		return 0, err
	}
	return count, nil
}
