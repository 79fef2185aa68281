package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/order/dto"
)

const (
	insertOrderQuery = `
        INSERT INTO orders (
            buyer_id, no_pi, buyer_name, buyer_address, currency, invoice_date,
            volume, port_loading, destination_port, custom_columns, template_type
        ) VALUES (
            :buyer_id, :no_pi, :buyer_name, :buyer_address, :currency, :invoice_date,
            :volume, :port_loading, :destination_port, :custom_columns, :template_type
        )
    `

	updateOrderQuery = `
        UPDATE orders
        SET buyer_id = :buyer_id,
            no_pi = :no_pi,
            buyer_name = :buyer_name,
            buyer_address = :buyer_address,
            currency = :currency,
            invoice_date = :invoice_date,
            volume = :volume,
            port_loading = :port_loading,
            destination_port = :destination_port,
            custom_columns = :custom_columns,
            template_type = :template_type,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = :id
    `

	insertItemQuery = `
        INSERT INTO order_items (
            order_id, product_id, client_code, qty, cbm_total, fob_total_usd,
            gross_weight_total, net_weight_total, total_gw_total, total_nw_total,
            fob, custom_column_values, discount_5, discount_10
        ) VALUES (
            :order_id, :product_id, :client_code, :qty, :cbm_total, :fob_total_usd,
            :gross_weight_total, :net_weight_total, :total_gw_total, :total_nw_total,
            :fob, :custom_column_values, :discount_5, :discount_10
        )
    `

	selectItemsQuery = `
        SELECT oi.*, p.km_code, p.description, p.picture_url
        FROM order_items oi
        LEFT JOIN products p ON oi.product_id = p.id
        WHERE oi.order_id = ?
        ORDER BY oi.id
    `

	// oi.fob is replaced by the product price when the line has no override,
	// so the item columns are listed instead of oi.*.
	selectReportItemsQuery = `
        SELECT
            oi.id, oi.order_id, oi.product_id, oi.client_code, oi.qty,
            oi.cbm_total, oi.fob_total_usd, oi.gross_weight_total, oi.net_weight_total,
            oi.total_gw_total, oi.total_nw_total, oi.custom_column_values,
            oi.discount_5, oi.discount_10, oi.created_at,
            p.km_code, p.description, p.picture_url,
            p.size_width, p.size_depth, p.size_height,
            p.packing_width, p.packing_depth, p.packing_height,
            p.color, p.fob_price, p.hs_code, p.client_barcode, p.client_description,
            COALESCE(oi.fob, p.fob_price) AS fob
        FROM order_items oi
        INNER JOIN products p ON oi.product_id = p.id
        WHERE oi.order_id = ?
        ORDER BY oi.id
    `
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Create(ctx context.Context, o *model.Order, items []model.OrderItem) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// 1. Resolve buyer
	buyerID, err := upsertBuyer(ctx, tx, o.BuyerName, o.BuyerAddress)
	if err != nil {
		return 0, err
	}
	o.BuyerID = &buyerID

	// 2. Insert order
	res, err := tx.NamedExecContext(ctx, insertOrderQuery, o)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	// 3. Insert items
	if err := insertItems(ctx, tx, orderID, items); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	o.ID = orderID
	return orderID, nil
}

// Update rewrites the order and replaces its item set. Item ids do not
// survive an update.
func (r *MySQLRepository) Update(ctx context.Context, o *model.Order, items []model.OrderItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	buyerID, err := upsertBuyer(ctx, tx, o.BuyerName, o.BuyerAddress)
	if err != nil {
		return err
	}
	o.BuyerID = &buyerID

	if _, err := tx.NamedExecContext(ctx, updateOrderQuery, o); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = ?", o.ID); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	if err := insertItems(ctx, tx, o.ID, items); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return tx.Commit()
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, "SELECT * FROM orders WHERE id = ? LIMIT 1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.OrderListItem, int, error) {
	orders := []model.OrderListItem{}
	var count int

	like := "%" + f.SearchQuery + "%"

	countQuery := "SELECT COUNT(*) FROM orders o WHERE o.no_pi LIKE ? OR o.buyer_name LIKE ?"
	if err := r.DB.GetContext(ctx, &count, countQuery, like, like); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `
        SELECT o.*,
            COUNT(oi.id) AS item_count,
            COALESCE(SUM(oi.cbm_total), 0) AS total_cbm,
            COALESCE(SUM(oi.fob_total_usd), 0) AS total_usd
        FROM orders o
        LEFT JOIN order_items oi ON o.id = oi.order_id
        WHERE o.no_pi LIKE ? OR o.buyer_name LIKE ?
        GROUP BY o.id
        ORDER BY o.created_at DESC`
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	if err := r.DB.SelectContext(ctx, &orders, query, like, like); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, count, nil
}

func (r *MySQLRepository) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	if err := r.DB.SelectContext(ctx, &items, selectItemsQuery, orderID); err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return items, nil
}

func (r *MySQLRepository) FindReportItems(ctx context.Context, orderID int64) ([]model.ReportItem, error) {
	items := []model.ReportItem{}
	if err := r.DB.SelectContext(ctx, &items, selectReportItemsQuery, orderID); err != nil {
		return nil, fmt.Errorf("failed to list report items: %w", err)
	}
	return items, nil
}

type itemValues struct {
	ID     int64         `db:"id"`
	Values model.JSONMap `db:"custom_column_values"`
}

// RenameCustomColumn stores the renamed column list and moves every item's
// value from oldName to newName. An existing newName value is overwritten.
func (r *MySQLRepository) RenameCustomColumn(ctx context.Context, orderID int64, columns model.StringList, oldName, newName string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE orders SET custom_columns = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		columns, orderID,
	); err != nil {
		return fmt.Errorf("failed to update custom columns: %w", err)
	}

	var rows []itemValues
	if err := tx.SelectContext(ctx, &rows,
		"SELECT id, custom_column_values FROM order_items WHERE order_id = ? FOR UPDATE", orderID,
	); err != nil {
		return fmt.Errorf("failed to load custom column values: %w", err)
	}

	for _, row := range rows {
		v, ok := row.Values[oldName]
		if !ok || oldName == newName {
			continue
		}
		row.Values[newName] = v
		delete(row.Values, oldName)

		if _, err := tx.ExecContext(ctx,
			"UPDATE order_items SET custom_column_values = ? WHERE id = ?",
			row.Values, row.ID,
		); err != nil {
			return fmt.Errorf("failed to move custom column value: %w", err)
		}
	}

	return tx.Commit()
}

// upsertBuyer returns the id of the buyer with exactly this name, updating
// its address, or inserts a new buyer.
func upsertBuyer(ctx context.Context, tx *sqlx.Tx, name string, address *string) (int64, error) {
	var id int64
	err := tx.GetContext(ctx, &id, "SELECT id FROM buyers WHERE name = ?", name)
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx,
			"UPDATE buyers SET address = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			address, id,
		); err != nil {
			return 0, fmt.Errorf("failed to update buyer: %w", err)
		}
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(ctx, "INSERT INTO buyers (name, address) VALUES (?, ?)", name, address)
		if err != nil {
			return 0, fmt.Errorf("failed to insert buyer: %w", err)
		}
		return res.LastInsertId()
	default:
		return 0, fmt.Errorf("failed to find buyer: %w", err)
	}
}

func insertItems(ctx context.Context, tx *sqlx.Tx, orderID int64, items []model.OrderItem) error {
	for i := range items {
		items[i].OrderID = orderID
		if _, err := tx.NamedExecContext(ctx, insertItemQuery, &items[i]); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}
