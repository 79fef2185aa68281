package dto

type BuyerFilters struct {
	SearchQuery string // name or address
	Page        int
	PageSize    int
}
