package folder

import (
	"context"
	"errors"

	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
)

// ErrDuplicateName is returned by Create and Update when another folder
// already uses the name.
var ErrDuplicateName = errors.New("folder name already exists")

type Repository interface {
	Create(ctx context.Context, folder *model.Folder) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Folder, error)
	FindAll(ctx context.Context, filters *dto.FolderFilters) ([]model.Folder, error)
	Update(ctx context.Context, folder *model.Folder) error
	Delete(ctx context.Context, id int64) error

	CountProducts(ctx context.Context, id int64) (int, error)
}
