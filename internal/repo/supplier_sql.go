package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

type SQLSupplierRepository struct {
	db *sql.DB
	d  Dialect
}

func NewSQLSupplierRepository(db *sql.DB, d Dialect) *SQLSupplierRepository {
	return &SQLSupplierRepository{db: db, d: d}
}

func (r *SQLSupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := r.d.Rebind(`INSERT INTO suppliers (id, name, phone, location, email, business_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Phone, s.Location, s.Email, s.BusinessName, s.CreatedAt)
	if err != nil {
		return models.Supplier{}, err
	}
	return s, nil
}

func (r *SQLSupplierRepository) GetAll() ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, phone, location, email, business_name, created_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var s models.Supplier
		var email, businessName sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Location, &email, &businessName, &s.CreatedAt); err != nil {
			return nil, err
		}
		if email.Valid {
			s.Email = &email.String
		}
		if businessName.Valid {
			s.BusinessName = &businessName.String
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *SQLSupplierRepository) Update(s models.Supplier) (models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := r.d.Rebind(`UPDATE suppliers
		SET name = ?, phone = ?, location = ?, email = ?, business_name = ?, created_at = ?
		WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Phone, s.Location, s.Email, s.BusinessName, s.CreatedAt, s.ID)
	if err != nil {
		return models.Supplier{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (r *SQLSupplierRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := r.d.Rebind(`DELETE FROM suppliers WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
