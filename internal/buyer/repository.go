package buyer

import (
	"context"

	"github.com/kayumanis/furniture-order-service/internal/buyer/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, buyer *model.Buyer) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Buyer, error)
	FindAll(ctx context.Context, filters *dto.BuyerFilters) ([]model.Buyer, int, error)
	FindOptions(ctx context.Context, search string, limit int) ([]model.BuyerOption, error)
	Update(ctx context.Context, buyer *model.Buyer) error
	Delete(ctx context.Context, id int64) error

	CountOrders(ctx context.Context, id int64) (int, error)
}
