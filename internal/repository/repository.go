package repository

import (
	"context"
	"errors"

	"github.com/selectshop/selectshop-go/internal/model"
)

var ErrInvalidSortField = errors.New("unknown sort field")

// ListParams carries pagination and sorting for product queries.
// Page is 0-indexed; the HTTP layer converts from the 1-indexed query param.
type ListParams struct {
	Page   int
	Size   int
	SortBy string
	Asc    bool
}

// Offset returns the row offset for the page.
func (p ListParams) Offset() int {
	return p.Page * p.Size
}

// sortColumns is the allow-list mapping caller-facing sort fields to columns.
// Caller input never reaches the ORDER BY clause directly.
var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"lprice":     "lprice",
	"myprice":    "myprice",
	"createAt":   "created_at",
	"modifiedAt": "modified_at",
}

// orderClause builds an ORDER BY fragment from the allow-listed sort field.
func orderClause(p ListParams) (string, error) {
	column, ok := sortColumns[p.SortBy]
	if !ok {
		return "", ErrInvalidSortField
	}
	direction := "DESC"
	if p.Asc {
		direction = "ASC"
	}
	return " ORDER BY " + column + " " + direction, nil
}

// UserStore is the user directory consumed by the service layer.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// ProductStore handles interest-product persistence.
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByIDAndUserID(ctx context.Context, id, userID int64) (*model.Product, error)
	ListAll(ctx context.Context, params ListParams) ([]model.Product, int64, error)
	ListByUserID(ctx context.Context, userID int64, params ListParams) ([]model.Product, int64, error)
	ListByUserIDAndFolderID(ctx context.Context, userID, folderID int64, params ListParams) ([]model.Product, int64, error)
	UpdateMyPrice(ctx context.Context, id int64, myprice int) error
	UpdateSearchFields(ctx context.Context, id int64, title, link, image string, lprice int) error
	AddToFolder(ctx context.Context, productID, folderID int64) error
}

// FolderStore handles folder persistence.
type FolderStore interface {
	CreateAll(ctx context.Context, folders []model.Folder) ([]model.Folder, error)
	GetByID(ctx context.Context, id int64) (*model.Folder, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Folder, error)
	ListByUserIDAndNames(ctx context.Context, userID int64, names []string) ([]model.Folder, error)
}
