package model

type Buyer struct {
	BaseModel
	Name    string  `db:"name" json:"name"`
	Address *string `db:"address" json:"address"`
}

type BuyerOption struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Address *string `db:"address" json:"address"`
}
