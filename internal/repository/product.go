package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/selectshop/selectshop-go/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `id, user_id, title, link, image, lprice, myprice, created_at, modified_at`

// ProductRepository handles interest-product persistence operations.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product and sets the generated ID on the product struct.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (user_id, title, link, image, lprice, myprice) VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		product.UserID, product.Title, product.Link, product.Image, product.Lprice, product.Myprice,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	product.ID = id
	return nil
}

// GetByID retrieves a product by id regardless of owner. Used by the folder
// association path and the trusted search-sync path.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDAndUserID retrieves a product scoped to (id, owner). A product owned
// by another user is indistinguishable from a missing one.
func (r *ProductRepository) GetByIDAndUserID(ctx context.Context, id, userID int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ? AND user_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

// ListAll retrieves one page of the full product collection (admin view).
func (r *ProductRepository) ListAll(ctx context.Context, params ListParams) ([]model.Product, int64, error) {
	order, err := orderClause(params)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + order + ` LIMIT ? OFFSET ?`
	products, err := r.scanMany(ctx, query, params.Size, params.Offset())
	return products, total, err
}

// ListByUserID retrieves one page of the products owned by userID.
func (r *ProductRepository) ListByUserID(ctx context.Context, userID int64, params ListParams) ([]model.Product, int64, error) {
	order, err := orderClause(params)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = ?` + order + ` LIMIT ? OFFSET ?`
	products, err := r.scanMany(ctx, query, userID, params.Size, params.Offset())
	return products, total, err
}

// ListByUserIDAndFolderID retrieves one page of the products in a folder,
// filtered by owner and folder in a single query. A folder id belonging to
// another user yields no rows because the user_id filter applies too; the
// folder itself is deliberately not loaded first.
func (r *ProductRepository) ListByUserIDAndFolderID(ctx context.Context, userID, folderID int64, params ListParams) ([]model.Product, int64, error) {
	order, err := orderClause(params)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM products p
		JOIN product_folders pf ON pf.product_id = p.id
		WHERE p.user_id = ? AND pf.folder_id = ?`

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, userID, folderID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT p.id, p.user_id, p.title, p.link, p.image, p.lprice, p.myprice, p.created_at, p.modified_at
		FROM products p
		JOIN product_folders pf ON pf.product_id = p.id
		WHERE p.user_id = ? AND pf.folder_id = ?` + order + ` LIMIT ? OFFSET ?`
	products, err := r.scanMany(ctx, query, userID, folderID, params.Size, params.Offset())
	return products, total, err
}

// UpdateMyPrice sets the owner's target price. Existence is not inferred from
// the result here: the driver reports changed rows rather than matched rows,
// so re-sending the current price affects zero rows. Callers load the row
// first.
func (r *ProductRepository) UpdateMyPrice(ctx context.Context, id int64, myprice int) error {
	query := `UPDATE products SET myprice = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, myprice, id)
	return err
}

// UpdateSearchFields refreshes the fields sourced from the shopping search
// provider. No ownership scoping; only the sync job calls this. As with
// UpdateMyPrice, an unchanged row affects zero rows, so existence is the
// caller's concern.
func (r *ProductRepository) UpdateSearchFields(ctx context.Context, id int64, title, link, image string, lprice int) error {
	query := `UPDATE products SET title = ?, link = ?, image = ?, lprice = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, title, link, image, lprice, id)
	return err
}

// AddToFolder associates a product with a folder. Re-adding an existing
// association is a no-op.
func (r *ProductRepository) AddToFolder(ctx context.Context, productID, folderID int64) error {
	query := `INSERT INTO product_folders (product_id, folder_id) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE folder_id = folder_id`

	_, err := r.db.ExecContext(ctx, query, productID, folderID)
	return err
}

func (r *ProductRepository) scanOne(row *sql.Row) (*model.Product, error) {
	product := &model.Product{}
	err := row.Scan(
		&product.ID, &product.UserID, &product.Title, &product.Link, &product.Image,
		&product.Lprice, &product.Myprice, &product.CreatedAt, &product.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) scanMany(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Link, &p.Image,
			&p.Lprice, &p.Myprice, &p.CreatedAt, &p.ModifiedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
