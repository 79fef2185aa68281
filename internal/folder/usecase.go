package folder

import (
	"context"

	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
)

type UseCase interface {
	CreateFolder(ctx context.Context, input *dto.CreateFolderInput) (int64, error)
	GetFolder(ctx context.Context, id int64) (*model.Folder, error)
	ListFolders(ctx context.Context, filters *dto.FolderFilters) ([]model.Folder, error)
	UpdateFolder(ctx context.Context, input *dto.UpdateFolderInput) error
	DeleteFolder(ctx context.Context, id int64) error
}
