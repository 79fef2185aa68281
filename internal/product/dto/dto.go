package dto

type ProductFilters struct {
	FolderID    int64  `json:"folder_id"`
	SearchQuery string `json:"search"` // km_code or description
	Page        int    `json:"page"`
	PageSize    int    `json:"limit"`
}
