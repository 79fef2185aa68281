package dto

type OrderFilters struct {
	SearchQuery string // no_pi or buyer_name
	Page        int
	PageSize    int
}
