package service

import (
	"context"
	"errors"
	"strings"

	"github.com/selectshop/selectshop-go/internal/model"
	"github.com/selectshop/selectshop-go/internal/naver"
	"github.com/selectshop/selectshop-go/internal/repository"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrNotOwned        = errors.New("not your product or folder")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidMyPrice  = errors.New("myprice must be greater than zero")
	ErrInvalidSort     = errors.New("unknown sort field")
)

// ProductService handles interest-product business logic. All authenticated
// operations resolve the acting user from the token subject before touching
// product rows.
type ProductService struct {
	products repository.ProductStore
	folders  repository.FolderStore
	users    repository.UserStore
}

// NewProductService creates a new ProductService.
func NewProductService(products repository.ProductStore, folders repository.FolderStore, users repository.UserStore) *ProductService {
	return &ProductService{
		products: products,
		folders:  folders,
		users:    users,
	}
}

func (s *ProductService) resolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create registers a new interest product owned by the acting user. The
// target price starts at zero until the owner sets one.
func (s *ProductService) Create(ctx context.Context, username string, req model.ProductRequest) (model.ProductResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.ProductResponse{}, ErrTitleRequired
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return model.ProductResponse{}, err
	}

	product := &model.Product{
		UserID: user.ID,
		Title:  req.Title,
		Link:   req.Link,
		Image:  req.Image,
		Lprice: req.Lprice,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return model.ProductResponse{}, err
	}

	return model.NewProductResponse(product), nil
}

// List returns one page of products. Admins see the full collection; regular
// users see only their own rows.
func (s *ProductService) List(ctx context.Context, username string, params repository.ListParams) (model.ProductPage, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return model.ProductPage{}, err
	}

	var (
		products []model.Product
		total    int64
	)
	if user.Role == model.RoleAdmin {
		products, total, err = s.products.ListAll(ctx, params)
	} else {
		products, total, err = s.products.ListByUserID(ctx, user.ID, params)
	}
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortField) {
			return model.ProductPage{}, ErrInvalidSort
		}
		return model.ProductPage{}, err
	}

	return newProductPage(products, total, params), nil
}

// UpdateMyPrice sets the acting user's target price on one of their products.
// The lookup is owner-scoped, so a product owned by someone else surfaces as
// the same not-found as a missing id.
func (s *ProductService) UpdateMyPrice(ctx context.Context, username string, id int64, req model.MyPriceRequest) (int64, error) {
	if req.Myprice <= 0 {
		return 0, ErrInvalidMyPrice
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return 0, err
	}

	product, err := s.products.GetByIDAndUserID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}

	if err := s.products.UpdateMyPrice(ctx, product.ID, req.Myprice); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}

	return product.ID, nil
}

// AddFolder associates one of the acting user's products with one of their
// folders. Product and folder are loaded without owner scoping and then both
// ownership checks run explicitly, so a foreign id fails with an authorization
// error rather than an ambiguous not-found.
func (s *ProductService) AddFolder(ctx context.Context, username string, productID, folderID int64) (int64, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return 0, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}

	folder, err := s.folders.GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, repository.ErrFolderNotFound) {
			return 0, ErrFolderNotFound
		}
		return 0, err
	}

	if product.UserID != user.ID || folder.UserID != user.ID {
		return 0, ErrNotOwned
	}

	if err := s.products.AddToFolder(ctx, product.ID, folder.ID); err != nil {
		return 0, err
	}

	return product.ID, nil
}

// UpdateBySearch refreshes a product's search-sourced fields from a shopping
// search item. No ownership check: this path only runs from the in-process
// price sync job, never over HTTP.
func (s *ProductService) UpdateBySearch(ctx context.Context, id int64, item naver.Item) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	err = s.products.UpdateSearchFields(ctx, product.ID, item.Title, item.Link, item.Image, item.Lprice)
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

func newProductPage(products []model.Product, total int64, params repository.ListParams) model.ProductPage {
	content := make([]model.ProductResponse, len(products))
	for i := range products {
		content[i] = model.NewProductResponse(&products[i])
	}

	totalPages := 0
	if params.Size > 0 {
		totalPages = int((total + int64(params.Size) - 1) / int64(params.Size))
	}

	return model.ProductPage{
		Content:       content,
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
