package model

type Folder struct {
	BaseModel
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description"`
	Color        *string `db:"color" json:"color"`
	ProductCount int64   `db:"product_count" json:"product_count"`
}
