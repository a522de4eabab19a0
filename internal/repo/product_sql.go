package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

type SQLProductRepository struct {
	db         *sql.DB
	d          Dialect
	categories *SQLCategoryRepository
}

func NewSQLProductRepository(db *sql.DB, d Dialect, categories *SQLCategoryRepository) *SQLProductRepository {
	return &SQLProductRepository{db: db, d: d, categories: categories}
}

func (r *SQLProductRepository) Create(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if p.Category != nil && *p.Category != "" {
		if err := r.categories.ensureTx(ctx, tx, *p.Category, p.CreatedAt); err != nil {
			return models.Product{}, err
		}
	}

	query := r.d.Rebind(`INSERT INTO products (id, name, stock, price, barcode, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err = tx.ExecContext(ctx, query, p.ID, p.Name, p.Stock, p.Price, p.Barcode, p.Category, p.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *SQLProductRepository) GetAll() ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, stock, price, barcode, category, created_at FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *SQLProductRepository) GetByID(id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := r.d.Rebind(`SELECT id, name, stock, price, barcode, category, created_at FROM products WHERE id = ?`)
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *SQLProductRepository) Update(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if p.Category != nil && *p.Category != "" {
		if err := r.categories.ensureTx(ctx, tx, *p.Category, p.CreatedAt); err != nil {
			return models.Product{}, err
		}
	}

	query := r.d.Rebind(`UPDATE products
		SET name = ?, stock = ?, price = ?, barcode = ?, category = ?, created_at = ?
		WHERE id = ?`)
	res, err := tx.ExecContext(ctx, query, p.Name, p.Stock, p.Price, p.Barcode, p.Category, p.CreatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes the product only. Sales referencing it are left in place;
// their later reversal restores stock on a row that no longer exists, which
// affects zero rows and is not an error.
func (r *SQLProductRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := r.d.Rebind(`DELETE FROM products WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var barcode, category sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &barcode, &category, &p.CreatedAt); err != nil {
		return models.Product{}, err
	}
	if barcode.Valid {
		p.Barcode = &barcode.String
	}
	if category.Valid {
		p.Category = &category.String
	}
	return p, nil
}
