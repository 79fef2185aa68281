package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/calc"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/product"
	"github.com/kayumanis/furniture-order-service/internal/product/dto"
	"github.com/kayumanis/furniture-order-service/pkg/cache"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/kayumanis/furniture-order-service/pkg/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	listCacheTTL = 5 * time.Minute

	msgNotFound   = "Product not found"
	msgReferenced = "Cannot delete product because it is used in existing orders. Please remove it from orders first."
)

type productUseCase struct {
	repo     product.Repository
	images   product.ImageStore
	cache    *cache.RedisClient
	validate *validator.Validator
	logger   logger.ZapLogger
}

// NewProductUseCase wires the product use case. cache may be nil, in which
// case listings always hit the database.
func NewProductUseCase(repo product.Repository, images product.ImageStore, cache *cache.RedisClient, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		images:   images,
		cache:    cache,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error) {
	p, err := uc.buildProduct(input)
	if err != nil {
		return 0, err
	}

	if input.Picture != nil {
		url, err := uc.images.Save(input.Picture)
		if err != nil {
			return 0, apperr.From(err, "create product")
		}
		p.PictureURL = &url
	}

	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		uc.discardImage(p.PictureURL)
		return 0, apperr.Internal("create product", err)
	}

	uc.invalidateProductCache(ctx)
	return id, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch product", err)
	}
	if p == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	// 1. Check Cache
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	// 2. DB Query
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Internal("fetch products", err)
	}

	// 3. Set Cache
	if cacheKey != "" && uc.cache != nil {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			if err := uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache product list", zap.Error(err))
			}
		}
	}

	return products, count, nil
}

func (uc *productUseCase) ListProductOptions(ctx context.Context) ([]model.ProductOption, error) {
	options, err := uc.repo.FindOptions(ctx)
	if err != nil {
		return nil, apperr.Internal("fetch products for select", err)
	}
	return options, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) error {
	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return apperr.Internal("update product", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	p, err := uc.buildProduct(&input.Fields)
	if err != nil {
		return err
	}
	p.ID = existing.ID
	p.PictureURL = existing.PictureURL

	var replaced *string
	if input.Fields.Picture != nil {
		url, err := uc.images.Save(input.Fields.Picture)
		if err != nil {
			return apperr.From(err, "update product")
		}
		replaced = existing.PictureURL
		p.PictureURL = &url
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		if input.Fields.Picture != nil {
			uc.discardImage(p.PictureURL)
		}
		return apperr.Internal("update product", err)
	}

	uc.discardImage(replaced)
	uc.invalidateProductCache(ctx)
	return nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	usage, err := uc.repo.CountOrderItems(ctx, id)
	if err != nil {
		return apperr.Internal("delete product", err)
	}
	if usage > 0 {
		return apperr.Referenced(msgReferenced)
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("delete product", err)
	}
	if p == nil {
		return apperr.NotFound(msgNotFound)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("delete product", err)
	}

	uc.discardImage(p.PictureURL)
	uc.invalidateProductCache(ctx)
	return nil
}

// buildProduct validates the submitted fields and applies the derived
// values: CBM from packing dimensions, and the total_* passthroughs.
func (uc *productUseCase) buildProduct(in *dto.CreateProductInput) (*model.Product, error) {
	in.KMCode = strings.TrimSpace(in.KMCode)
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	num := numberParser{}
	p := &model.Product{
		ClientCode:        optionalString(in.ClientCode),
		ClientBarcode:     optionalString(in.ClientBarcode),
		ClientDescription: optionalString(in.ClientDescription),
		KMCode:            in.KMCode,
		Description:       optionalString(in.Description),
		SizeWidth:         num.parse("size_width", in.SizeWidth),
		SizeDepth:         num.parse("size_depth", in.SizeDepth),
		SizeHeight:        num.parse("size_height", in.SizeHeight),
		PackingWidth:      num.parse("packing_width", in.PackingWidth),
		PackingDepth:      num.parse("packing_depth", in.PackingDepth),
		PackingHeight:     num.parse("packing_height", in.PackingHeight),
		CBM:               num.parse("cbm", in.CBM),
		Color:             optionalString(in.Color),
		GrossWeight:       num.parse("gross_weight", in.GrossWeight),
		NetWeight:         num.parse("net_weight", in.NetWeight),
		TotalGW:           num.parse("total_gw", in.TotalGW),
		TotalNW:           num.parse("total_nw", in.TotalNW),
		FOBPrice:          num.parse("fob_price", in.FOBPrice),
		TotalPrice:        num.parse("total_price", in.TotalPrice),
		HSCode:            optionalString(in.HSCode),
	}
	if num.err != nil {
		return nil, num.err
	}

	if s := strings.TrimSpace(in.FolderID); s != "" {
		folderID, err := strconv.ParseInt(s, 10, 64)
		if err != nil || folderID <= 0 {
			return nil, apperr.Validation("folder_id must be a valid id")
		}
		p.FolderID = &folderID
	}

	if cbm, ok := calc.CBM(p.PackingWidth, p.PackingDepth, p.PackingHeight); ok {
		p.CBM = decimal.NullDecimal{Decimal: decimal.RequireFromString(cbm), Valid: true}
	}
	if p.GrossWeight.Valid {
		p.TotalGW = p.GrossWeight
	}
	if p.NetWeight.Valid {
		p.TotalNW = p.NetWeight
	}
	if p.FOBPrice.Valid {
		p.TotalPrice = p.FOBPrice
	}

	return p, nil
}

// numberParser keeps the first parse failure so a form can be converted in
// one expression.
type numberParser struct {
	err error
}

func (n *numberParser) parse(field, value string) decimal.NullDecimal {
	if strings.TrimSpace(value) == "" {
		return decimal.NullDecimal{}
	}
	d, ok := calc.Parse(value)
	if !ok {
		if n.err == nil {
			n.err = apperr.Validation(fmt.Sprintf("%s must be a number", field))
		}
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (uc *productUseCase) discardImage(url *string) {
	if url == nil || *url == "" {
		return
	}
	if err := uc.images.Remove(*url); err != nil {
		uc.logger.Warn("failed to remove product image", zap.String("picture_url", *url), zap.Error(err))
	}
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", product.ListCachePrefix, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, product.ListCachePrefix+"*"); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
