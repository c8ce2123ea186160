package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/storefront-api/internal/storage"
)

const (
	selectCategories   = `SELECT id, name FROM categories ORDER BY id`
	selectCategoryByID = `SELECT id, name FROM categories WHERE id = $1`
	insertCategory     = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	upsertCategory     = `
		INSERT INTO categories (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`
	syncCategorySequence = `SELECT setval(pg_get_serial_sequence('categories', 'id'), GREATEST($1, (SELECT last_value FROM categories_id_seq)))`
	deleteCategory       = `DELETE FROM categories WHERE id = $1`
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL category repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*Category, error) {
	c := &Category{}
	err := r.db.QueryRowContext(ctx, selectCategoryByID, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) Save(ctx context.Context, c *Category) (*Category, error) {
	saved := *c
	if saved.ID == 0 {
		if err := r.db.QueryRowContext(ctx, insertCategory, saved.Name).Scan(&saved.ID); err != nil {
			return nil, err
		}
		return &saved, nil
	}

	if _, err := r.db.ExecContext(ctx, upsertCategory, saved.ID, saved.Name); err != nil {
		return nil, err
	}
	// explicit ids bypass the sequence; only ever move it forward
	if _, err := r.db.ExecContext(ctx, syncCategorySequence, saved.ID); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteCategory, id)
	return err
}
