package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

type SQLCategoryRepository struct {
	db *sql.DB
	d  Dialect
}

func NewSQLCategoryRepository(db *sql.DB, d Dialect) *SQLCategoryRepository {
	return &SQLCategoryRepository{db: db, d: d}
}

func (r *SQLCategoryRepository) Create(c models.Category) (models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing string
	query := r.d.Rebind(`SELECT id FROM categories WHERE name = ?`)
	err = tx.QueryRowContext(ctx, query, c.Name).Scan(&existing)
	if err == nil {
		return models.Category{}, ErrCategoryNameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, err
	}

	query = r.d.Rebind(`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, query, c.ID, c.Name, c.CreatedAt); err != nil {
		return models.Category{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (r *SQLCategoryRepository) GetAll() ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Delete clears the category reference on every product pointing at the
// category, then removes the category row, in one transaction.
func (r *SQLCategoryRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := r.d.Rebind(`UPDATE products SET category = NULL WHERE category = ?`)
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	query = r.d.Rebind(`DELETE FROM categories WHERE id = ?`)
	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return tx.Commit()
}

func (r *SQLCategoryRepository) Ensure(name, createdAt string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.ensureTx(ctx, tx, name, createdAt); err != nil {
		return err
	}
	return tx.Commit()
}

// ensureTx inserts the category inside the caller's transaction if no category
// with that name exists yet, using the name as its id. The product write path
// calls this so the auto-created category commits with the product.
func (r *SQLCategoryRepository) ensureTx(ctx context.Context, tx *sql.Tx, name, createdAt string) error {
	var id string
	query := r.d.Rebind(`SELECT id FROM categories WHERE name = ?`)
	err := tx.QueryRowContext(ctx, query, name).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	query = r.d.Rebind(`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`)
	_, err = tx.ExecContext(ctx, query, name, name, createdAt)
	return err
}
