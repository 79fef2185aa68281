package usecase

import (
	"context"
	"strings"

	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/buyer"
	"github.com/kayumanis/furniture-order-service/internal/buyer/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/kayumanis/furniture-order-service/pkg/validator"
)

const (
	optionsLimit = 50

	msgNotFound   = "Buyer not found"
	msgRequired   = "Name and address are required"
	msgReferenced = "Cannot delete buyer because it is used in existing orders. Please remove it from orders first."
)

type buyerUseCase struct {
	repo     buyer.Repository
	validate *validator.Validator
	logger   logger.ZapLogger
}

func NewBuyerUseCase(repo buyer.Repository, log logger.ZapLogger) buyer.UseCase {
	return &buyerUseCase{
		repo:     repo,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *buyerUseCase) CreateBuyer(ctx context.Context, input *dto.CreateBuyerInput) (int64, error) {
	b, err := uc.buildBuyer(input)
	if err != nil {
		return 0, err
	}

	id, err := uc.repo.Create(ctx, b)
	if err != nil {
		return 0, apperr.Internal("create buyer", err)
	}
	return id, nil
}

func (uc *buyerUseCase) GetBuyer(ctx context.Context, id int64) (*model.Buyer, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch buyer", err)
	}
	if b == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	return b, nil
}

func (uc *buyerUseCase) ListBuyers(ctx context.Context, filters *dto.BuyerFilters) ([]model.Buyer, int, error) {
	buyers, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Internal("fetch buyers", err)
	}
	return buyers, count, nil
}

func (uc *buyerUseCase) ListBuyerOptions(ctx context.Context, search string) ([]model.BuyerOption, error) {
	options, err := uc.repo.FindOptions(ctx, search, optionsLimit)
	if err != nil {
		return nil, apperr.Internal("fetch buyers for select", err)
	}
	return options, nil
}

func (uc *buyerUseCase) UpdateBuyer(ctx context.Context, input *dto.UpdateBuyerInput) error {
	b, err := uc.buildBuyer(&input.Fields)
	if err != nil {
		return err
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return apperr.Internal("update buyer", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	b.ID = existing.ID
	if err := uc.repo.Update(ctx, b); err != nil {
		return apperr.Internal("update buyer", err)
	}
	return nil
}

func (uc *buyerUseCase) DeleteBuyer(ctx context.Context, id int64) error {
	usage, err := uc.repo.CountOrders(ctx, id)
	if err != nil {
		return apperr.Internal("delete buyer", err)
	}
	if usage > 0 {
		return apperr.Referenced(msgReferenced)
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("delete buyer", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("delete buyer", err)
	}
	return nil
}

func (uc *buyerUseCase) buildBuyer(in *dto.CreateBuyerInput) (*model.Buyer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperr.Validation(msgRequired)
	}
	address := in.Address
	return &model.Buyer{Name: in.Name, Address: &address}, nil
}
