package order

import (
	"context"

	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/order/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.OrderInput) (int64, *model.OrderSummary, error)
	GetOrder(ctx context.Context, id int64) (*model.OrderDetail, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.OrderListItem, int, error)
	UpdateOrder(ctx context.Context, input *dto.UpdateOrderInput) error
	DeleteOrder(ctx context.Context, id int64) error

	GetReport(ctx context.Context, id int64) (*model.OrderReport, error)
	RenameCustomColumn(ctx context.Context, input *dto.RenameColumnInput) (model.StringList, error)
}
