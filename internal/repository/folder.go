package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/selectshop/selectshop-go/internal/model"
)

var ErrFolderNotFound = errors.New("folder not found")

// FolderRepository handles folder persistence operations.
type FolderRepository struct {
	db *sql.DB
}

// NewFolderRepository creates a new FolderRepository.
func NewFolderRepository(db *sql.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// CreateAll inserts the given folders in one transaction and returns them with
// generated IDs set.
func (r *FolderRepository) CreateAll(ctx context.Context, folders []model.Folder) ([]model.Folder, error) {
	if len(folders) == 0 {
		return []model.Folder{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `INSERT INTO folders (user_id, name) VALUES (?, ?)`
	for i := range folders {
		result, err := tx.ExecContext(ctx, query, folders[i].UserID, folders[i].Name)
		if err != nil {
			return nil, err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		folders[i].ID = id
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return folders, nil
}

// GetByID retrieves a folder by id regardless of owner. The caller is
// responsible for the ownership check.
func (r *FolderRepository) GetByID(ctx context.Context, id int64) (*model.Folder, error) {
	query := `SELECT id, user_id, name, created_at FROM folders WHERE id = ?`

	folder := &model.Folder{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	return folder, nil
}

// ListByUserID retrieves all folders owned by userID.
func (r *FolderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Folder, error) {
	query := `SELECT id, user_id, name, created_at FROM folders WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFolders(rows)
}

// ListByUserIDAndNames retrieves the user's folders whose names appear in the
// given list. Used to skip already-present names on bulk creation.
func (r *FolderRepository) ListByUserIDAndNames(ctx context.Context, userID int64, names []string) ([]model.Folder, error) {
	if len(names) == 0 {
		return []model.Folder{}, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]

	query := `SELECT id, user_id, name, created_at FROM folders WHERE user_id = ? AND name IN (` + placeholders + `)`

	args := make([]any, 0, len(names)+1)
	args = append(args, userID)
	for _, name := range names {
		args = append(args, name)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFolders(rows)
}

func scanFolders(rows *sql.Rows) ([]model.Folder, error) {
	var folders []model.Folder
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}
