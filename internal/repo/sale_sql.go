package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

// SQLSaleRepository owns the sale ledger. Every mutation pairs the sale write
// with a compensating stock write on the referenced product inside one
// transaction, so stock conservation holds even when an operation fails
// halfway through.
type SQLSaleRepository struct {
	db *sql.DB
	d  Dialect
}

func NewSQLSaleRepository(db *sql.DB, d Dialect) *SQLSaleRepository {
	return &SQLSaleRepository{db: db, d: d}
}

// Create inserts the sale and decrements the product's stock by the sold
// quantity. There is no sufficiency check here: oversell is allowed and shows
// up as negative stock. Amendments do check (see Update); that asymmetry is
// load-bearing for callers and must not be unified silently.
func (r *SQLSaleRepository) Create(s models.Sale) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := r.d.Rebind(`INSERT INTO sales (id, product_id, product_name, quantity, price, total_price, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err = tx.ExecContext(ctx, query, s.ID, s.ProductID, s.ProductName, s.Quantity, s.Price, s.TotalPrice, s.Date)
	if err != nil {
		return models.Sale{}, err
	}

	query = r.d.Rebind(`UPDATE products SET stock = stock - ? WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, query, s.Quantity, s.ProductID); err != nil {
		return models.Sale{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, err
	}
	return s, nil
}

func (r *SQLSaleRepository) GetAll() ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, product_id, product_name, quantity, price, total_price, date FROM sales ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.Price, &s.TotalPrice, &s.Date); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Update amends a sale's mutable fields and applies the quantity delta to the
// product's stock. The product reference is immutable; an increased quantity
// must fit in current stock, a decreased one always succeeds. product_name is
// stored as supplied by the caller, not re-read from the product.
func (r *SQLSaleRepository) Update(id string, s models.Sale) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var storedProductID string
	var storedQuantity int
	query := r.d.Rebind(`SELECT product_id, quantity FROM sales WHERE id = ?`)
	err = tx.QueryRowContext(ctx, query, id).Scan(&storedProductID, &storedQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	if err != nil {
		return models.Sale{}, err
	}

	if s.ProductID != storedProductID {
		return models.Sale{}, ErrSaleProductImmutable
	}

	delta := s.Quantity - storedQuantity
	if delta != 0 {
		var stock int
		query = r.d.Rebind(`SELECT stock FROM products WHERE id = ?`)
		err = tx.QueryRowContext(ctx, query, s.ProductID).Scan(&stock)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, ErrProductNotFound
		}
		if err != nil {
			return models.Sale{}, err
		}
		if delta > 0 && stock < delta {
			return models.Sale{}, ErrInsufficientStock
		}

		query = r.d.Rebind(`UPDATE products SET stock = stock - ? WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, query, delta, s.ProductID); err != nil {
			return models.Sale{}, err
		}
	}

	query = r.d.Rebind(`UPDATE sales
		SET product_name = ?, quantity = ?, price = ?, total_price = ?, date = ?
		WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, query, s.ProductName, s.Quantity, s.Price, s.TotalPrice, s.Date, id); err != nil {
		return models.Sale{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, err
	}
	s.ID = id
	return s, nil
}

// Delete reverses the sale: removes the row and restores its quantity to the
// product's stock. When the product has since been deleted the restoration
// touches zero rows and the reversal still succeeds.
func (r *SQLSaleRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var productID string
	var quantity int
	query := r.d.Rebind(`SELECT product_id, quantity FROM sales WHERE id = ?`)
	err = tx.QueryRowContext(ctx, query, id).Scan(&productID, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSaleNotFound
	}
	if err != nil {
		return err
	}

	query = r.d.Rebind(`DELETE FROM sales WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	query = r.d.Rebind(`UPDATE products SET stock = stock + ? WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, query, quantity, productID); err != nil {
		return err
	}

	return tx.Commit()
}

// Summary aggregates sales dated at or after since, per product. SUBSTR over
// the RFC3339 text yields the calendar date on every supported engine, and the
// cutoff comparison is lexicographic, which is order-preserving for RFC3339
// UTC strings.
func (r *SQLSaleRepository) Summary(since time.Time) ([]models.SaleSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := r.d.Rebind(`SELECT product_id,
			SUM(quantity) AS total_quantity,
			COUNT(DISTINCT SUBSTR(date, 1, 10)) AS days_with_sales
		FROM sales
		WHERE date >= ?
		GROUP BY product_id`)
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.SaleSummary
	for rows.Next() {
		var s models.SaleSummary
		if err := rows.Scan(&s.ProductID, &s.TotalQuantity, &s.DaysWithSales); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
