package buyer

import (
	"context"

	"github.com/kayumanis/furniture-order-service/internal/buyer/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
)

type UseCase interface {
	CreateBuyer(ctx context.Context, input *dto.CreateBuyerInput) (int64, error)
	GetBuyer(ctx context.Context, id int64) (*model.Buyer, error)
	ListBuyers(ctx context.Context, filters *dto.BuyerFilters) ([]model.Buyer, int, error)
	ListBuyerOptions(ctx context.Context, search string) ([]model.BuyerOption, error)
	UpdateBuyer(ctx context.Context, input *dto.UpdateBuyerInput) error
	DeleteBuyer(ctx context.Context, id int64) error
}
