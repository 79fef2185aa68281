package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	ClientCode        *string             `db:"client_code" json:"client_code"`
	ClientBarcode     *string             `db:"client_barcode" json:"client_barcode"`
	ClientDescription *string             `db:"client_description" json:"client_description"`
	KMCode            string              `db:"km_code" json:"km_code"`
	Description       *string             `db:"description" json:"description"`
	FolderID          *int64              `db:"folder_id" json:"folder_id"`
	PictureURL        *string             `db:"picture_url" json:"picture_url"`
	SizeWidth         decimal.NullDecimal `db:"size_width" json:"size_width"`
	SizeDepth         decimal.NullDecimal `db:"size_depth" json:"size_depth"`
	SizeHeight        decimal.NullDecimal `db:"size_height" json:"size_height"`
	PackingWidth      decimal.NullDecimal `db:"packing_width" json:"packing_width"`
	PackingDepth      decimal.NullDecimal `db:"packing_depth" json:"packing_depth"`
	PackingHeight     decimal.NullDecimal `db:"packing_height" json:"packing_height"`
	CBM               decimal.NullDecimal `db:"cbm" json:"cbm"`
	Color             *string             `db:"color" json:"color"`
	GrossWeight       decimal.NullDecimal `db:"gross_weight" json:"gross_weight"`
	NetWeight         decimal.NullDecimal `db:"net_weight" json:"net_weight"`
	TotalGW           decimal.NullDecimal `db:"total_gw" json:"total_gw"`
	TotalNW           decimal.NullDecimal `db:"total_nw" json:"total_nw"`
	FOBPrice          decimal.NullDecimal `db:"fob_price" json:"fob_price"`
	TotalPrice        decimal.NullDecimal `db:"total_price" json:"total_price"`
	HSCode            *string             `db:"hs_code" json:"hs_code"`

	FolderName  *string `db:"folder_name" json:"folder_name,omitempty"`   // Joined data
	FolderColor *string `db:"folder_color" json:"folder_color,omitempty"` // Joined data
}

// ProductOption is the row served to order form pickers.
type ProductOption struct {
	ID                int64               `db:"id" json:"id"`
	ClientCode        *string             `db:"client_code" json:"client_code"`
	ClientBarcode     *string             `db:"client_barcode" json:"client_barcode"`
	ClientDescription *string             `db:"client_description" json:"client_description"`
	KMCode            string              `db:"km_code" json:"km_code"`
	Description       *string             `db:"description" json:"description"`
	CBM               decimal.NullDecimal `db:"cbm" json:"cbm"`
	FOBPrice          decimal.NullDecimal `db:"fob_price" json:"fob_price"`
	GrossWeight       decimal.NullDecimal `db:"gross_weight" json:"gross_weight"`
	NetWeight         decimal.NullDecimal `db:"net_weight" json:"net_weight"`
	TotalGW           decimal.NullDecimal `db:"total_gw" json:"total_gw"`
	TotalNW           decimal.NullDecimal `db:"total_nw" json:"total_nw"`
	PictureURL        *string             `db:"picture_url" json:"picture_url"`
	SizeWidth         decimal.NullDecimal `db:"size_width" json:"size_width"`
	SizeDepth         decimal.NullDecimal `db:"size_depth" json:"size_depth"`
	SizeHeight        decimal.NullDecimal `db:"size_height" json:"size_height"`
	PackingWidth      decimal.NullDecimal `db:"packing_width" json:"packing_width"`
	PackingDepth      decimal.NullDecimal `db:"packing_depth" json:"packing_depth"`
	PackingHeight     decimal.NullDecimal `db:"packing_height" json:"packing_height"`
	Color             *string             `db:"color" json:"color"`
	FolderID          *int64              `db:"folder_id" json:"folder_id"`
	FolderName        *string             `db:"folder_name" json:"folder_name"`
}
