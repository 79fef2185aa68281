package dto

type FolderFilters struct {
	SearchQuery string // name
}
