package product

import (
	"context"

	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	FindOptions(ctx context.Context) ([]model.ProductOption, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Number of order items pointing at the product
	CountOrderItems(ctx context.Context, id int64) (int, error)
}
