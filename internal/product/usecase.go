package product

import (
	"context"
	"mime/multipart"

	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/product/dto"
)

// ListCachePrefix prefixes the cached product list pages. Anything that
// changes what a list row shows clears every key under it.
const ListCachePrefix = "products:list:"

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	ListProductOptions(ctx context.Context) ([]model.ProductOption, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
}

// ImageStore persists uploaded pictures and removes them again.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(url string) error
}
