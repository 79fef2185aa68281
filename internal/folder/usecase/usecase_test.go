package usecase

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/folder"
	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/pkg/cache"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	folders  map[int64]*model.Folder
	products map[int64]int
	names    map[string]bool
	deleted  []int64
	created  *model.Folder
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{folders: map[int64]*model.Folder{}, products: map[int64]int{}, names: map[string]bool{}}
}

func (f *fakeRepo) Create(_ context.Context, fo *model.Folder) (int64, error) {
	if f.names[fo.Name] {
		return 0, folder.ErrDuplicateName
	}
	f.names[fo.Name] = true
	fo.ID = int64(len(f.folders) + 1)
	f.folders[fo.ID] = fo
	f.created = fo
	return fo.ID, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Folder, error) {
	return f.folders[id], nil
}

func (f *fakeRepo) FindAll(context.Context, *dto.FolderFilters) ([]model.Folder, error) {
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, fo *model.Folder) error {
	if f.names[fo.Name] && f.folders[fo.ID].Name != fo.Name {
		return folder.ErrDuplicateName
	}
	f.folders[fo.ID] = fo
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.folders, id)
	return nil
}

func (f *fakeRepo) CountProducts(_ context.Context, id int64) (int, error) {
	return f.products[id], nil
}

func TestCreateFolderTrimsName(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFolderUseCase(repo, nil, logger.NewNop())

	id, err := uc.CreateFolder(context.Background(), &dto.CreateFolderInput{Name: "  Chairs  ", Color: "#aa0000"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Chairs", repo.created.Name)
	assert.Nil(t, repo.created.Description)
	require.NotNil(t, repo.created.Color)
	assert.Equal(t, "#aa0000", *repo.created.Color)
}

func TestCreateFolderRejects(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFolderUseCase(repo, nil, logger.NewNop())
	ctx := context.Background()

	_, err := uc.CreateFolder(ctx, &dto.CreateFolderInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, msgNameRequired, err.Error())

	_, err = uc.CreateFolder(ctx, &dto.CreateFolderInput{Name: "Tables"})
	require.NoError(t, err)
	_, err = uc.CreateFolder(ctx, &dto.CreateFolderInput{Name: "Tables"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, msgDuplicate, err.Error())
}

func TestDeleteFolder(t *testing.T) {
	tests := []struct {
		name     string
		products int
		exists   bool
		kind     apperr.Kind
		deleted  bool
	}{
		{"empty folder", 0, true, 0, true},
		{"folder with products", 3, true, apperr.KindReferenced, false},
		{"missing folder", 0, false, apperr.KindNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			if tt.exists {
				repo.folders[5] = &model.Folder{BaseModel: model.BaseModel{ID: 5}, Name: "Sofas"}
			}
			repo.products[5] = tt.products
			uc := NewFolderUseCase(repo, nil, logger.NewNop())

			err := uc.DeleteFolder(context.Background(), 5)
			if tt.deleted {
				require.NoError(t, err)
				assert.Equal(t, []int64{5}, repo.deleted)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, tt.kind))
			assert.Empty(t, repo.deleted)
			if tt.exists {
				assert.Contains(t, repo.folders, int64(5))
			}
		})
	}
}

func TestUpdateFolderNotFound(t *testing.T) {
	uc := NewFolderUseCase(newFakeRepo(), nil, logger.NewNop())

	err := uc.UpdateFolder(context.Background(), &dto.UpdateFolderInput{ID: 1, Fields: dto.CreateFolderInput{Name: "x"}})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestFolderWritesClearProductListCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rc, err := cache.NewRedisClient(&cache.Config{Addr: mr.Addr()})
	require.NoError(t, err)
	defer rc.Close()

	repo := newFakeRepo()
	repo.folders[1] = &model.Folder{BaseModel: model.BaseModel{ID: 1}, Name: "Chairs"}
	repo.folders[2] = &model.Folder{BaseModel: model.BaseModel{ID: 2}, Name: "Tables"}
	repo.names["Chairs"] = true
	repo.names["Tables"] = true
	uc := NewFolderUseCase(repo, rc, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, mr.Set("products:list:abc", "cached"))
	require.NoError(t, mr.Set("folders:other", "kept"))

	// rejected writes leave the cache alone
	err = uc.UpdateFolder(ctx, &dto.UpdateFolderInput{ID: 1, Fields: dto.CreateFolderInput{Name: "Tables"}})
	require.Error(t, err)
	assert.True(t, mr.Exists("products:list:abc"))

	err = uc.UpdateFolder(ctx, &dto.UpdateFolderInput{ID: 1, Fields: dto.CreateFolderInput{Name: "Chairs", Color: "#00ff00"}})
	require.NoError(t, err)
	assert.False(t, mr.Exists("products:list:abc"))
	assert.True(t, mr.Exists("folders:other"))

	require.NoError(t, mr.Set("products:list:def", "cached"))
	require.NoError(t, uc.DeleteFolder(ctx, 2))
	assert.False(t, mr.Exists("products:list:def"))
}
