package dto

type CreateBuyerInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type UpdateBuyerInput struct {
	ID     int64
	Fields CreateBuyerInput
}
