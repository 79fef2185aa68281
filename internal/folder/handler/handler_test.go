package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const msgNotEmpty = "Cannot delete folder because it contains products. Please move or remove products first."

type stubUseCase struct {
	created  *dto.CreateFolderInput
	updated  *dto.UpdateFolderInput
	nonEmpty map[int64]bool
	deleted  []int64
}

func (s *stubUseCase) CreateFolder(_ context.Context, input *dto.CreateFolderInput) (int64, error) {
	s.created = input
	if input.Name == "" {
		return 0, apperr.Validation("Folder name is required")
	}
	return 3, nil
}

func (s *stubUseCase) GetFolder(_ context.Context, id int64) (*model.Folder, error) {
	if id != 3 {
		return nil, apperr.NotFound(msgNotFound)
	}
	return &model.Folder{BaseModel: model.BaseModel{ID: 3}, Name: "Chairs", ProductCount: 2}, nil
}

func (s *stubUseCase) ListFolders(_ context.Context, filters *dto.FolderFilters) ([]model.Folder, error) {
	return []model.Folder{{Name: filters.SearchQuery}}, nil
}

func (s *stubUseCase) UpdateFolder(_ context.Context, input *dto.UpdateFolderInput) error {
	s.updated = input
	return nil
}

func (s *stubUseCase) DeleteFolder(_ context.Context, id int64) error {
	if s.nonEmpty[id] {
		return apperr.Referenced(msgNotEmpty)
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newApp(uc *stubUseCase) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				return c.Status(ae.Status()).JSON(fiber.Map{"error": ae.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	NewFolderHandler(uc, logger.NewNop()).MapRoutes(app.Group("/api/folders"))
	return app
}

func decode(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestCreateFolder(t *testing.T) {
	uc := &stubUseCase{}
	app := newApp(uc)

	req := httptest.NewRequest("POST", "/api/folders", strings.NewReader(`{"name":"Chairs","color":"#aa0000"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode(t, resp.Body)
	assert.Equal(t, float64(3), out["id"])
	assert.Equal(t, "Folder created successfully", out["message"])
	require.NotNil(t, uc.created)
	assert.Equal(t, "#aa0000", uc.created.Color)
}

func TestCreateFolderMissingName(t *testing.T) {
	app := newApp(&stubUseCase{})

	req := httptest.NewRequest("POST", "/api/folders", strings.NewReader(`{"description":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Folder name is required", decode(t, resp.Body)["error"])
}

func TestGetFolder(t *testing.T) {
	app := newApp(&stubUseCase{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/folders/3", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode(t, resp.Body)
	assert.Equal(t, "Chairs", out["name"])
	assert.Equal(t, float64(2), out["product_count"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/folders/4", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, msgNotFound, decode(t, resp.Body)["error"])
}

func TestUpdateFolderUsesPathID(t *testing.T) {
	uc := &stubUseCase{}
	app := newApp(uc)

	req := httptest.NewRequest("PUT", "/api/folders/8", strings.NewReader(`{"name":"Sofas"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, uc.updated)
	assert.Equal(t, int64(8), uc.updated.ID)
	assert.Equal(t, "Sofas", uc.updated.Fields.Name)
}

func TestDeleteFolder(t *testing.T) {
	tests := []struct {
		name string
		path string
		code int
		msg  string
	}{
		{"empty folder", "/api/folders/1", fiber.StatusOK, ""},
		{"folder with products", "/api/folders/2", fiber.StatusBadRequest, msgNotEmpty},
		{"invalid id", "/api/folders/0", fiber.StatusNotFound, msgNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{nonEmpty: map[int64]bool{2: true}}
			app := newApp(uc)

			resp, err := app.Test(httptest.NewRequest("DELETE", tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.code, resp.StatusCode)
			out := decode(t, resp.Body)
			if tt.msg == "" {
				assert.Equal(t, "Folder deleted successfully", out["message"])
				assert.Equal(t, []int64{1}, uc.deleted)
				return
			}
			assert.Equal(t, tt.msg, out["error"])
			assert.Empty(t, uc.deleted)
		})
	}
}
