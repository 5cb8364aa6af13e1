package service

import (
	"context"
	"errors"
	"strings"

	"github.com/selectshop/selectshop-go/internal/model"
	"github.com/selectshop/selectshop-go/internal/repository"
)

var ErrFolderNamesRequired = errors.New("at least one folder name is required")

// FolderService handles folder business logic.
type FolderService struct {
	folders  repository.FolderStore
	products repository.ProductStore
	users    repository.UserStore
}

// NewFolderService creates a new FolderService.
func NewFolderService(folders repository.FolderStore, products repository.ProductStore, users repository.UserStore) *FolderService {
	return &FolderService{
		folders:  folders,
		products: products,
		users:    users,
	}
}

func (s *FolderService) resolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AddFolders creates the requested folders for the acting user, skipping names
// the user already has. The existence check and the insert are separate
// statements; concurrent requests with the same name can still both insert.
// Returns only the newly created folders.
func (s *FolderService) AddFolders(ctx context.Context, username string, names []string) ([]model.FolderResponse, error) {
	trimmed := make([]string, 0, len(names))
	for _, name := range names {
		if n := strings.TrimSpace(name); n != "" {
			trimmed = append(trimmed, n)
		}
	}
	if len(trimmed) == 0 {
		return nil, ErrFolderNamesRequired
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	existing, err := s.folders.ListByUserIDAndNames(ctx, user.ID, trimmed)
	if err != nil {
		return nil, err
	}

	existingNames := make(map[string]bool, len(existing))
	for _, f := range existing {
		existingNames[f.Name] = true
	}

	var toCreate []model.Folder
	for _, name := range trimmed {
		if !existingNames[name] {
			toCreate = append(toCreate, model.Folder{UserID: user.ID, Name: name})
		}
	}

	created, err := s.folders.CreateAll(ctx, toCreate)
	if err != nil {
		return nil, err
	}

	responses := make([]model.FolderResponse, len(created))
	for i := range created {
		responses[i] = model.NewFolderResponse(&created[i])
	}
	return responses, nil
}

// GetFolders returns all folders owned by the acting user, unpaginated.
func (s *FolderService) GetFolders(ctx context.Context, username string) ([]model.FolderResponse, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	folders, err := s.folders.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.FolderResponse, len(folders))
	for i := range folders {
		responses[i] = model.NewFolderResponse(&folders[i])
	}
	return responses, nil
}

// GetProductsInFolder returns one page of the acting user's products in the
// given folder. The folder is not loaded first: the query filters by both
// user id and folder id, so a folder belonging to another user yields an
// empty page rather than leaking its existence.
func (s *FolderService) GetProductsInFolder(ctx context.Context, username string, folderID int64, params repository.ListParams) (model.ProductPage, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return model.ProductPage{}, err
	}

	products, total, err := s.products.ListByUserIDAndFolderID(ctx, user.ID, folderID, params)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortField) {
			return model.ProductPage{}, ErrInvalidSort
		}
		return model.ProductPage{}, err
	}

	return newProductPage(products, total, params), nil
}
