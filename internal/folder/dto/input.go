package dto

type CreateFolderInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type UpdateFolderInput struct {
	ID     int64
	Fields CreateFolderInput
}
