package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

const blogColumns = `id, title, body, user_id, created_at, updated_at`

// BlogReadRepository handles blog read operations
type BlogReadRepository struct {
	db *sqlx.DB
}

func NewBlogReadRepository(db *sqlx.DB) *BlogReadRepository {
	return &BlogReadRepository{db: db}
}

// GetByID returns the blog with the given id, or nil if none exists.
func (r *BlogReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogDB, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1
	`

	var blog models.BlogDB
	err := r.db.GetContext(ctx, &blog, query, id)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// List returns blogs matching filter, newest first. A nil OwnerID matches every blog.
func (r *BlogReadRepository) List(ctx context.Context, filter models.BlogFilter) ([]models.BlogDB, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE ($1::UUID IS NULL OR user_id = $1)
		ORDER BY created_at DESC, id
	`

	var owner any
	if filter.OwnerID != nil {
		owner = *filter.OwnerID
	}

	blogs := []models.BlogDB{}
	err := r.db.SelectContext(ctx, &blogs, query, owner)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{owner},
		"result", len(blogs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// BlogWriteRepository handles blog write operations
type BlogWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlogWriteRepository(db *sqlx.DB, txGetter TxGetter) *BlogWriteRepository {
	return &BlogWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new blog and fills in its timestamps.
func (r *BlogWriteRepository) Save(ctx context.Context, blog *models.BlogDB) error {
	query := `
		INSERT INTO blogs (id, title, body, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, blog.ID, blog.Title, blog.Body, blog.UserID).
		Scan(&blog.CreatedAt, &blog.UpdatedAt)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{blog.ID, blog.UserID},
		"error", err,
	)

	return mapWriteError(err)
}

// Update overwrites title and body of an existing blog. The owner never changes.
func (r *BlogWriteRepository) Update(ctx context.Context, blog *models.BlogDB) error {
	query := `
		UPDATE blogs
		SET title = $2, body = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, blog.ID, blog.Title, blog.Body).
		Scan(&blog.UpdatedAt)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{blog.ID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a blog.
func (r *BlogWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
