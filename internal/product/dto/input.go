package dto

import "mime/multipart"

// CreateProductInput carries the multipart form fields as submitted.
// Numeric fields are parsed by the use case; empty means absent.
type CreateProductInput struct {
	ClientCode        string `form:"client_code" json:"client_code"`
	ClientBarcode     string `form:"client_barcode" json:"client_barcode"`
	ClientDescription string `form:"client_description" json:"client_description"`
	KMCode            string `form:"km_code" json:"km_code" validate:"required"`
	Description       string `form:"description" json:"description"`
	FolderID          string `form:"folder_id" json:"folder_id"`
	SizeWidth         string `form:"size_width" json:"size_width"`
	SizeDepth         string `form:"size_depth" json:"size_depth"`
	SizeHeight        string `form:"size_height" json:"size_height"`
	PackingWidth      string `form:"packing_width" json:"packing_width"`
	PackingDepth      string `form:"packing_depth" json:"packing_depth"`
	PackingHeight     string `form:"packing_height" json:"packing_height"`
	CBM               string `form:"cbm" json:"cbm"`
	Color             string `form:"color" json:"color"`
	GrossWeight       string `form:"gross_weight" json:"gross_weight"`
	NetWeight         string `form:"net_weight" json:"net_weight"`
	TotalGW           string `form:"total_gw" json:"total_gw"`
	TotalNW           string `form:"total_nw" json:"total_nw"`
	FOBPrice          string `form:"fob_price" json:"fob_price"`
	TotalPrice        string `form:"total_price" json:"total_price"`
	HSCode            string `form:"hs_code" json:"hs_code"`

	Picture *multipart.FileHeader `form:"-" json:"-"`
}

type UpdateProductInput struct {
	ID     int64
	Fields CreateProductInput
}
