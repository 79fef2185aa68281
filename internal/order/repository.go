package order

import (
	"context"

	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/order/dto"
)

// Repository persists orders. Create and Update resolve the buyer by name,
// write the order and replace its whole item set in a single transaction.
type Repository interface {
	Create(ctx context.Context, order *model.Order, items []model.OrderItem) (int64, error)
	Update(ctx context.Context, order *model.Order, items []model.OrderItem) error
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.OrderListItem, int, error)
	FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	FindReportItems(ctx context.Context, orderID int64) ([]model.ReportItem, error)

	RenameCustomColumn(ctx context.Context, orderID int64, columns model.StringList, oldName, newName string) error
}

// ProductLookup loads the products referenced by submitted order lines.
type ProductLookup interface {
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*model.Product, error)
}
