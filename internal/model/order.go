package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	BuyerID         *int64     `db:"buyer_id" json:"buyer_id"`
	NoPI            string     `db:"no_pi" json:"no_pi"`
	BuyerName       string     `db:"buyer_name" json:"buyer_name"`
	BuyerAddress    *string    `db:"buyer_address" json:"buyer_address"`
	Currency        string     `db:"currency" json:"currency"`
	InvoiceDate     NullDate   `db:"invoice_date" json:"invoice_date"`
	Volume          *string    `db:"volume" json:"volume"`
	PortLoading     *string    `db:"port_loading" json:"port_loading"`
	DestinationPort *string    `db:"destination_port" json:"destination_port"`
	CustomColumns   StringList `db:"custom_columns" json:"custom_columns"`
	TemplateType    string     `db:"template_type" json:"template_type"`
}

// OrderListItem is an order row with aggregates over its items.
type OrderListItem struct {
	Order
	ItemCount int64           `db:"item_count" json:"item_count"`
	TotalCBM  decimal.Decimal `db:"total_cbm" json:"total_cbm"`
	TotalUSD  decimal.Decimal `db:"total_usd" json:"total_usd"`
}

type OrderItem struct {
	ID                 int64               `db:"id" json:"id"`
	OrderID            int64               `db:"order_id" json:"order_id"`
	ProductID          *int64              `db:"product_id" json:"product_id"`
	ClientCode         *string             `db:"client_code" json:"client_code"`
	Qty                *int64              `db:"qty" json:"qty"`
	CBMTotal           decimal.NullDecimal `db:"cbm_total" json:"cbm_total"`
	FOBTotalUSD        decimal.NullDecimal `db:"fob_total_usd" json:"fob_total_usd"`
	GrossWeightTotal   decimal.NullDecimal `db:"gross_weight_total" json:"gross_weight_total"`
	NetWeightTotal     decimal.NullDecimal `db:"net_weight_total" json:"net_weight_total"`
	TotalGWTotal       decimal.NullDecimal `db:"total_gw_total" json:"total_gw_total"`
	TotalNWTotal       decimal.NullDecimal `db:"total_nw_total" json:"total_nw_total"`
	FOB                decimal.NullDecimal `db:"fob" json:"fob"`
	CustomColumnValues JSONMap             `db:"custom_column_values" json:"custom_column_values"`
	Discount5          decimal.NullDecimal `db:"discount_5" json:"discount_5"`
	Discount10         decimal.NullDecimal `db:"discount_10" json:"discount_10"`
	CreatedAt          time.Time           `db:"created_at" json:"created_at"`

	// Joined from products
	KMCode      *string `db:"km_code" json:"km_code"`
	Description *string `db:"description" json:"description"`
	PictureURL  *string `db:"picture_url" json:"picture_url"`

	// Per-unit weights, derived from the totals on read
	GrossWeight *string `db:"-" json:"gross_weight"`
	NetWeight   *string `db:"-" json:"net_weight"`
}

// ReportItem is an order item joined with the product columns the packing
// list prints. FOB holds the item override or, failing that, the product
// FOB price.
type ReportItem struct {
	OrderItem
	SizeWidth         decimal.NullDecimal `db:"size_width" json:"size_width"`
	SizeDepth         decimal.NullDecimal `db:"size_depth" json:"size_depth"`
	SizeHeight        decimal.NullDecimal `db:"size_height" json:"size_height"`
	PackingWidth      decimal.NullDecimal `db:"packing_width" json:"packing_width"`
	PackingDepth      decimal.NullDecimal `db:"packing_depth" json:"packing_depth"`
	PackingHeight     decimal.NullDecimal `db:"packing_height" json:"packing_height"`
	Color             *string             `db:"color" json:"color"`
	FOBPrice          decimal.NullDecimal `db:"fob_price" json:"fob_price"`
	HSCode            *string             `db:"hs_code" json:"hs_code"`
	ClientBarcode     *string             `db:"client_barcode" json:"client_barcode"`
	ClientDescription *string             `db:"client_description" json:"client_description"`
}

type OrderSummary struct {
	TotalCBM          string `json:"totalCBM"`
	TotalUSD          string `json:"totalUSD"`
	TotalGrossWeight  string `json:"totalGrossWeight"`
	TotalNetWeight    string `json:"totalNetWeight"`
	TotalGW           string `json:"totalGW"`
	TotalNW           string `json:"totalNW"`
	Currency          string `json:"currency"`
	TotalUSDFormatted string `json:"totalUSDFormatted"`
}

type OrderReport struct {
	Order   *Order       `json:"order"`
	Items   []ReportItem `json:"items"`
	Summary OrderSummary `json:"summary"`
}

// OrderDetail is an order with its items, serialised flat as the order's
// fields plus "items".
type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}
