package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/storefront-api/internal/storage"
)

const (
	selectCustomers    = `SELECT id, first_name, last_name FROM customers ORDER BY id`
	selectCustomerByID = `SELECT id, first_name, last_name FROM customers WHERE id = $1`
	insertCustomer     = `INSERT INTO customers (first_name, last_name) VALUES ($1, $2) RETURNING id`
	upsertCustomer     = `
		INSERT INTO customers (id, first_name, last_name) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name`
	syncCustomerSequence = `SELECT setval(pg_get_serial_sequence('customers', 'id'), GREATEST($1, (SELECT last_value FROM customers_id_seq)))`
	deleteCustomer       = `DELETE FROM customers WHERE id = $1`
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, selectCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []*Customer{}
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	c := &Customer{}
	err := r.db.QueryRowContext(ctx, selectCustomerByID, id).Scan(&c.ID, &c.FirstName, &c.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) Save(ctx context.Context, c *Customer) (*Customer, error) {
	saved := *c
	if saved.ID == 0 {
		err := r.db.QueryRowContext(ctx, insertCustomer, saved.FirstName, saved.LastName).Scan(&saved.ID)
		if err != nil {
			return nil, err
		}
		return &saved, nil
	}

	if _, err := r.db.ExecContext(ctx, upsertCustomer, saved.ID, saved.FirstName, saved.LastName); err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, syncCustomerSequence, saved.ID); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteCustomer, id)
	return err
}
