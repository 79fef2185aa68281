package dto

import "github.com/kayumanis/furniture-order-service/internal/calc"

type OrderInput struct {
	NoPI            string           `json:"no_pi" validate:"required"`
	BuyerName       string           `json:"buyer_name" validate:"required"`
	BuyerAddress    string           `json:"buyer_address"`
	Currency        string           `json:"currency" validate:"omitempty,oneof=USD EUR Rp IDR"`
	InvoiceDate     string           `json:"invoice_date"`
	Volume          string           `json:"volume"`
	PortLoading     string           `json:"port_loading"`
	DestinationPort string           `json:"destination_port"`
	CustomColumns   []string         `json:"custom_columns" validate:"max=5"`
	TemplateType    string           `json:"template_type"`
	Items           []OrderItemInput `json:"items" validate:"required"`
}

// OrderItemInput is one submitted line. Line totals sent by clients are
// ignored; they are derived from the product and qty.
type OrderItemInput struct {
	ProductID          int64                  `json:"product_id"`
	ClientCode         string                 `json:"client_code"`
	Qty                calc.Flex              `json:"qty"`
	FOB                calc.Flex              `json:"fob"`
	CustomColumnValues map[string]interface{} `json:"custom_column_values"`
	Discount5          calc.Flex              `json:"discount_5"`
	Discount10         calc.Flex              `json:"discount_10"`
}

type UpdateOrderInput struct {
	ID     int64
	Fields OrderInput
}

type RenameColumnInput struct {
	OrderID int64  `json:"-"`
	Index   int    `json:"-"`
	Name    string `json:"name" validate:"required"`
}
