package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/database"
)

var _ database.ItemRepository = (*ItemRepo)(nil)

type ItemRepo struct {
	db *sql.DB
}

func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Insert(ctx context.Context, item *domain.ShoppingItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shopping_items (id, name, category, categories, completed, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Name, item.Category, pq.Array(item.Categories), item.Completed, item.CreatedAt,
	)
	return err
}

func (r *ItemRepo) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	return r.query(ctx,
		`SELECT id, name, category, categories, completed, created_at FROM shopping_items ORDER BY created_at ASC`,
	)
}

func (r *ItemRepo) ListOutstanding(ctx context.Context) ([]domain.ShoppingItem, error) {
	return r.query(ctx,
		`SELECT id, name, category, categories, completed, created_at FROM shopping_items WHERE completed = FALSE ORDER BY created_at ASC`,
	)
}

func (r *ItemRepo) Toggle(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shopping_items SET completed = NOT completed WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shopping_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ItemRepo) DeleteCompleted(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shopping_items WHERE completed = TRUE`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ItemRepo) query(ctx context.Context, q string) ([]domain.ShoppingItem, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.ShoppingItem
	for rows.Next() {
		var item domain.ShoppingItem
		var categories pq.StringArray
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &categories, &item.Completed, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Categories = categories
		results = append(results, item)
	}
	return results, rows.Err()
}
