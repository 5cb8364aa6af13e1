package model

import "time"

// Folder represents a user-owned folder grouping interest products.
type Folder struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
}

// FolderRequest represents a bulk folder creation request.
type FolderRequest struct {
	FolderNames []string `json:"folderNames"`
}

// FolderResponse represents a folder for API responses.
type FolderResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewFolderResponse builds the API projection of a folder.
func NewFolderResponse(f *Folder) FolderResponse {
	return FolderResponse{ID: f.ID, Name: f.Name}
}
