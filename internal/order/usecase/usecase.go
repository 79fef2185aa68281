package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/calc"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/order"
	"github.com/kayumanis/furniture-order-service/internal/order/dto"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/kayumanis/furniture-order-service/pkg/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultTemplate = "normal"

	msgNotFound       = "Order not found"
	msgColumnNotFound = "Custom column not found"
)

var million = decimal.NewFromInt(1_000_000)

type orderUseCase struct {
	repo      order.Repository
	products  order.ProductLookup
	publisher order.EventPublisher
	validate  *validator.Validator
	logger    logger.ZapLogger
}

// NewOrderUseCase wires the order use case. publisher may be nil, in which
// case no events are emitted.
func NewOrderUseCase(repo order.Repository, products order.ProductLookup, publisher order.EventPublisher, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		products:  products,
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (int64, *model.OrderSummary, error) {
	o, items, err := uc.buildOrder(ctx, input, "create order")
	if err != nil {
		return 0, nil, err
	}

	id, err := uc.repo.Create(ctx, o, items)
	if err != nil {
		return 0, nil, apperr.Internal("create order", err)
	}
	o.ID = id

	summary := order.Summarize(items, o.Currency)
	uc.publish(ctx, order.EventOrderSaved, o, items, &summary)
	return id, &summary, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*model.OrderDetail, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch order", err)
	}
	if o == nil {
		return nil, apperr.NotFound(msgNotFound)
	}

	items, err := uc.repo.FindItems(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch order", err)
	}
	for i := range items {
		withUnitWeights(&items[i])
	}

	return &model.OrderDetail{Order: *o, Items: items}, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.OrderListItem, int, error) {
	orders, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Internal("fetch orders", err)
	}
	return orders, count, nil
}

func (uc *orderUseCase) UpdateOrder(ctx context.Context, input *dto.UpdateOrderInput) error {
	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return apperr.Internal("update order", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	o, items, err := uc.buildOrder(ctx, &input.Fields, "update order")
	if err != nil {
		return err
	}
	o.ID = existing.ID

	if err := uc.repo.Update(ctx, o, items); err != nil {
		return apperr.Internal("update order", err)
	}

	summary := order.Summarize(items, o.Currency)
	uc.publish(ctx, order.EventOrderSaved, o, items, &summary)
	return nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("delete order", err)
	}
	if existing == nil {
		return apperr.NotFound(msgNotFound)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("delete order", err)
	}

	uc.publish(ctx, order.EventOrderDeleted, existing, nil, nil)
	return nil
}

func (uc *orderUseCase) GetReport(ctx context.Context, id int64) (*model.OrderReport, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch order report", err)
	}
	if o == nil {
		return nil, apperr.NotFound(msgNotFound)
	}

	items, err := uc.repo.FindReportItems(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetch order report", err)
	}
	for i := range items {
		withUnitWeights(&items[i].OrderItem)
	}

	return &model.OrderReport{
		Order:   o,
		Items:   items,
		Summary: order.SummarizeReport(items, o.Currency),
	}, nil
}

func (uc *orderUseCase) RenameCustomColumn(ctx context.Context, input *dto.RenameColumnInput) (model.StringList, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	o, err := uc.repo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, apperr.Internal("rename custom column", err)
	}
	if o == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	if input.Index < 0 || input.Index >= len(o.CustomColumns) {
		return nil, apperr.NotFound(msgColumnNotFound)
	}

	oldName := o.CustomColumns[input.Index]
	columns := append(model.StringList{}, o.CustomColumns...)
	columns[input.Index] = input.Name

	if err := uc.repo.RenameCustomColumn(ctx, o.ID, columns, oldName, input.Name); err != nil {
		return nil, apperr.Internal("rename custom column", err)
	}

	o.CustomColumns = columns
	uc.publish(ctx, order.EventOrderSaved, o, nil, nil)
	return columns, nil
}

// buildOrder validates input and derives every line total from the
// referenced products.
func (uc *orderUseCase) buildOrder(ctx context.Context, in *dto.OrderInput, op string) (*model.Order, []model.OrderItem, error) {
	in.NoPI = strings.TrimSpace(in.NoPI)
	in.BuyerName = strings.TrimSpace(in.BuyerName)
	if err := uc.validate.Struct(in); err != nil {
		return nil, nil, apperr.Validation(err.Error())
	}

	invoiceDate, err := model.ParseDate(in.InvoiceDate)
	if err != nil {
		return nil, nil, apperr.Validation("invoice_date must be a date (YYYY-MM-DD)")
	}

	o := &model.Order{
		NoPI:            in.NoPI,
		BuyerName:       in.BuyerName,
		BuyerAddress:    optionalString(in.BuyerAddress),
		Currency:        in.Currency,
		InvoiceDate:     invoiceDate,
		Volume:          optionalString(in.Volume),
		PortLoading:     optionalString(in.PortLoading),
		DestinationPort: optionalString(in.DestinationPort),
		TemplateType:    in.TemplateType,
	}
	if o.Currency == "" {
		o.Currency = calc.DefaultCurrency
	}
	if o.TemplateType == "" {
		o.TemplateType = defaultTemplate
	}
	if len(in.CustomColumns) > 0 {
		o.CustomColumns = model.StringList(in.CustomColumns)
	}

	ids := make([]int64, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, apperr.Internal(op, err)
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for i := range in.Items {
		item, err := deriveLine(i, &in.Items[i], products, o.CustomColumns)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, *item)
	}

	return o, items, nil
}

// deriveLine computes the stored totals of one order line from its product.
func deriveLine(idx int, in *dto.OrderItemInput, products map[int64]*model.Product, columns model.StringList) (*model.OrderItem, error) {
	p, ok := products[in.ProductID]
	if !ok || p == nil {
		return nil, apperr.Validation(fmt.Sprintf("items[%d].product_id does not reference an existing product", idx))
	}

	q, ok := in.Qty.Decimal()
	if !ok || !q.IsInteger() || !q.IsPositive() {
		return nil, apperr.Validation(fmt.Sprintf("items[%d].qty must be a whole number greater than 0", idx))
	}
	qty := q.IntPart()
	productID := p.ID

	item := &model.OrderItem{
		ProductID:  &productID,
		ClientCode: optionalString(in.ClientCode),
		Qty:        &qty,
		Discount5:  in.Discount5.NullDecimal(),
		Discount10: in.Discount10.NullDecimal(),
	}
	if item.ClientCode == nil {
		item.ClientCode = p.ClientCode
	}

	item.CBMTotal = lineCBM(p, q)

	fob := in.FOB.NullDecimal()
	if !fob.Valid {
		fob = p.FOBPrice
	}
	item.FOB = fob
	item.FOBTotalUSD = times(fob, q, 2)

	item.GrossWeightTotal = times(p.GrossWeight, q, 2)
	item.TotalGWTotal = item.GrossWeightTotal
	item.NetWeightTotal = times(p.NetWeight, q, 2)
	item.TotalNWTotal = item.NetWeightTotal

	item.CustomColumnValues = keepColumns(in.CustomColumnValues, columns)
	return item, nil
}

// lineCBM uses the packing dimensions when all are positive, falling back
// to the product's stored cbm.
func lineCBM(p *model.Product, qty decimal.Decimal) decimal.NullDecimal {
	w, d, h := p.PackingWidth, p.PackingDepth, p.PackingHeight
	if w.Valid && d.Valid && h.Valid && w.Decimal.IsPositive() && d.Decimal.IsPositive() && h.Decimal.IsPositive() {
		v := w.Decimal.Mul(d.Decimal).Mul(h.Decimal).Mul(qty).Div(million)
		return decimal.NewNullDecimal(v.Round(4))
	}
	return times(p.CBM, qty, 4)
}

func times(v decimal.NullDecimal, qty decimal.Decimal, places int32) decimal.NullDecimal {
	if !v.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v.Decimal.Mul(qty).Round(places))
}

// keepColumns drops values whose key is not one of the order's custom
// columns.
func keepColumns(values map[string]interface{}, columns model.StringList) model.JSONMap {
	if len(values) == 0 || len(columns) == 0 {
		return nil
	}
	out := model.JSONMap{}
	for _, c := range columns {
		if v, ok := values[c]; ok {
			out[c] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func withUnitWeights(it *model.OrderItem) {
	it.GrossWeight = calc.PerUnit(it.GrossWeightTotal, it.Qty)
	it.NetWeight = calc.PerUnit(it.NetWeightTotal, it.Qty)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// publish emits an order event. Delivery failures are logged only; the
// write has already committed.
func (uc *orderUseCase) publish(ctx context.Context, eventType string, o *model.Order, items []model.OrderItem, summary *model.OrderSummary) {
	if uc.publisher == nil {
		return
	}

	payload := order.OrderPayload{
		ID:        o.ID,
		NoPI:      o.NoPI,
		BuyerID:   o.BuyerID,
		BuyerName: o.BuyerName,
		Currency:  o.Currency,
		ItemCount: len(items),
	}
	if summary != nil {
		payload.TotalCBM = summary.TotalCBM
		payload.TotalUSD = summary.TotalUSD
	}

	event := order.OrderEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("Failed to marshal order event", zap.Error(err))
		return
	}

	if err := uc.publisher.Publish(ctx, strconv.FormatInt(o.ID, 10), value); err != nil {
		uc.logger.Warn("Failed to publish order event",
			zap.String("event_type", eventType),
			zap.Int64("order_id", o.ID),
			zap.Error(err),
		)
	}
}
