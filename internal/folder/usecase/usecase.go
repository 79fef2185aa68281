package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/folder"
	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/product"
	"github.com/kayumanis/furniture-order-service/pkg/cache"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/kayumanis/furniture-order-service/pkg/validator"
	"go.uber.org/zap"
)

const (
	msgNotFound     = "Folder not found"
	msgNameRequired = "Folder name is required"
	msgDuplicate    = "Folder with this name already exists"
	msgNotEmpty     = "Cannot delete folder because it contains products. Please move or remove products first."
)

type folderUseCase struct {
	repo     folder.Repository
	cache    *cache.RedisClient
	validate *validator.Validator
	logger   logger.ZapLogger
}

// NewFolderUseCase wires the folder use case. Product list pages carry the
// folder name and color, so folder writes clear them from cache when one is
// given.
func NewFolderUseCase(repo folder.Repository, cache *cache.RedisClient, log logger.ZapLogger) folder.UseCase {
	return &folderUseCase{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *folderUseCase) CreateFolder(ctx context.Context, input *dto.CreateFolderInput) (int64, error) {
	f, err := uc.buildFolder(input)
	if err != nil {
		return 0, err
	}

	id, err := uc.repo.Create(ctx, f)
	if err != nil {
		if errors.Is(err, folder.ErrDuplicateName) {
			return 0, apperr.Conflict(msgDuplicate)
		}
		return 0, apperr.Internal("create folder", err)
	}
	return id, nil
}

func (uc *folderUseCase) GetFolder(ctx context.Context, id int64) (*model.Folder, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch folder", err)
	}
	if f == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	return f, nil
}

func (uc *folderUseCase) ListFolders(ctx context.Context, filters *dto.FolderFilters) ([]model.Folder, error) {
	folders, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, apperr.Internal("fetch folders", err)
	}
	return folders, nil
}

func (uc *folderUseCase) UpdateFolder(ctx context.Context, input *dto.UpdateFolderInput) error {
	f, err := uc.buildFolder(&input.Fields)
	if err != nil {
		return err
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return apperr.Internal("update folder", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	f.ID = existing.ID
	if err := uc.repo.Update(ctx, f); err != nil {
		if errors.Is(err, folder.ErrDuplicateName) {
			return apperr.Conflict(msgDuplicate)
		}
		return apperr.Internal("update folder", err)
	}

	uc.invalidateProductCache(ctx)
	return nil
}

func (uc *folderUseCase) DeleteFolder(ctx context.Context, id int64) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("delete folder", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	count, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return apperr.Internal("delete folder", err)
	}
	if count > 0 {
		return apperr.Referenced(msgNotEmpty)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("delete folder", err)
	}

	uc.invalidateProductCache(ctx)
	return nil
}

func (uc *folderUseCase) buildFolder(in *dto.CreateFolderInput) (*model.Folder, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperr.Validation(msgNameRequired)
	}

	f := &model.Folder{Name: in.Name}
	if in.Description != "" {
		f.Description = &in.Description
	}
	if in.Color != "" {
		f.Color = &in.Color
	}
	return f, nil
}

func (uc *folderUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, product.ListCachePrefix+"*"); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
