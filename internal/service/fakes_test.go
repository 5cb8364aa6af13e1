package service

// In-memory store fakes implementing the repository interfaces. They mirror
// the scoping behavior of the MySQL repositories: owner filters, allow-listed
// sort fields, offset/limit pagination.

import (
	"context"
	"sort"
	"time"

	"github.com/selectshop/selectshop-go/internal/model"
	"github.com/selectshop/selectshop-go/internal/repository"
)

var fakeSortFields = map[string]bool{
	"id":         true,
	"title":      true,
	"lprice":     true,
	"myprice":    true,
	"createAt":   true,
	"modifiedAt": true,
}

type fakeUserStore struct {
	nextID int64
	users  map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if _, exists := f.users[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// mustAddUser seeds a user directly, bypassing signup validation.
func (f *fakeUserStore) mustAddUser(username string, role model.Role) *model.User {
	user := &model.User{Username: username, Role: role}
	f.Create(context.Background(), user)
	return user
}

type fakeProductStore struct {
	nextID       int64
	products     map[int64]*model.Product
	associations map[[2]int64]bool

	// forced error for the next UpdateMyPrice call, for failure-path tests
	updateMyPriceErr error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{
		products:     make(map[int64]*model.Product),
		associations: make(map[[2]int64]bool),
	}
}

func (f *fakeProductStore) Create(_ context.Context, product *model.Product) error {
	f.nextID++
	product.ID = f.nextID
	product.CreatedAt = time.Now()
	product.ModifiedAt = product.CreatedAt
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id int64) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductStore) GetByIDAndUserID(_ context.Context, id, userID int64) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok || product.UserID != userID {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductStore) ListAll(_ context.Context, params repository.ListParams) ([]model.Product, int64, error) {
	return f.list(func(*model.Product) bool { return true }, params)
}

func (f *fakeProductStore) ListByUserID(_ context.Context, userID int64, params repository.ListParams) ([]model.Product, int64, error) {
	return f.list(func(p *model.Product) bool { return p.UserID == userID }, params)
}

func (f *fakeProductStore) ListByUserIDAndFolderID(_ context.Context, userID, folderID int64, params repository.ListParams) ([]model.Product, int64, error) {
	return f.list(func(p *model.Product) bool {
		return p.UserID == userID && f.associations[[2]int64{p.ID, folderID}]
	}, params)
}

func (f *fakeProductStore) list(match func(*model.Product) bool, params repository.ListParams) ([]model.Product, int64, error) {
	if !fakeSortFields[params.SortBy] {
		return nil, 0, repository.ErrInvalidSortField
	}

	var all []model.Product
	for _, p := range f.products {
		if match(p) {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if params.Asc {
			return all[i].ID < all[j].ID
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeProductStore) UpdateMyPrice(_ context.Context, id int64, myprice int) error {
	if f.updateMyPriceErr != nil {
		return f.updateMyPriceErr
	}
	product, ok := f.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.Myprice = myprice
	product.ModifiedAt = time.Now()
	return nil
}

func (f *fakeProductStore) UpdateSearchFields(_ context.Context, id int64, title, link, image string, lprice int) error {
	product, ok := f.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.Title = title
	product.Link = link
	product.Image = image
	product.Lprice = lprice
	product.ModifiedAt = time.Now()
	return nil
}

func (f *fakeProductStore) AddToFolder(_ context.Context, productID, folderID int64) error {
	f.associations[[2]int64{productID, folderID}] = true
	return nil
}

type fakeFolderStore struct {
	nextID  int64
	folders map[int64]*model.Folder
}

func newFakeFolderStore() *fakeFolderStore {
	return &fakeFolderStore{folders: make(map[int64]*model.Folder)}
}

func (f *fakeFolderStore) CreateAll(_ context.Context, folders []model.Folder) ([]model.Folder, error) {
	for i := range folders {
		f.nextID++
		folders[i].ID = f.nextID
		folders[i].CreatedAt = time.Now()
		copied := folders[i]
		f.folders[copied.ID] = &copied
	}
	return folders, nil
}

func (f *fakeFolderStore) GetByID(_ context.Context, id int64) (*model.Folder, error) {
	folder, ok := f.folders[id]
	if !ok {
		return nil, repository.ErrFolderNotFound
	}
	copied := *folder
	return &copied, nil
}

func (f *fakeFolderStore) ListByUserID(_ context.Context, userID int64) ([]model.Folder, error) {
	var result []model.Folder
	for _, folder := range f.folders {
		if folder.UserID == userID {
			result = append(result, *folder)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeFolderStore) ListByUserIDAndNames(_ context.Context, userID int64, names []string) ([]model.Folder, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var result []model.Folder
	for _, folder := range f.folders {
		if folder.UserID == userID && wanted[folder.Name] {
			result = append(result, *folder)
		}
	}
	return result, nil
}
