package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/estolo/spaza-backend/internal/repo"
)

// defaultCategories is the fixed food and drink taxonomy seeded at first
// startup, keyed by name.
var defaultCategories = []string{
	"fruits",
	"vegetables",
	"grains",
	"cereals",
	"bread_and_bakery",
	"dairy_and_eggs",
	"meat",
	"poultry",
	"seafood",
	"beverages",
	"juices",
	"water",
	"soft_drinks",
	"alcohol",
	"snacks",
	"confectionery",
	"chocolates",
	"nuts_and_seeds",
	"oils_and_fats",
	"condiments_and_sauces",
	"spices_and_herbs",
	"canned_and_preserved",
	"frozen_foods",
	"pasta_and_noodles",
	"rice_and_legumes",
	"baby_food",
	"health_and_specialty",
}

// Migrate creates the four tables if absent and seeds the default categories.
// Idempotent; safe to run on every startup.
func Migrate(db *sql.DB, d repo.Dialect) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS products (
			id %s PRIMARY KEY,
			name %s NOT NULL,
			stock INTEGER NOT NULL,
			price %s NOT NULL,
			barcode %s,
			category %s,
			created_at %s NOT NULL
		)`, d.TextKeyType(), d.TextType(), d.FloatType(), d.TextType(), d.TextKeyType(), d.DateTimeType()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sales (
			id %s PRIMARY KEY,
			product_id %s NOT NULL,
			product_name %s NOT NULL,
			quantity INTEGER NOT NULL,
			price %s NOT NULL,
			total_price %s NOT NULL,
			date %s NOT NULL
		)`, d.TextKeyType(), d.TextKeyType(), d.TextType(), d.FloatType(), d.FloatType(), d.DateTimeType()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS suppliers (
			id %s PRIMARY KEY,
			name %s NOT NULL,
			phone %s NOT NULL,
			location %s NOT NULL,
			email %s,
			business_name %s,
			created_at %s NOT NULL
		)`, d.TextKeyType(), d.TextType(), d.TextType(), d.TextType(), d.TextType(), d.TextType(), d.DateTimeType()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS categories (
			id %s PRIMARY KEY,
			name %s NOT NULL UNIQUE,
			created_at %s NOT NULL
		)`, d.TextKeyType(), d.NameType(), d.DateTimeType()),
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return seedCategories(ctx, db, d)
}

func seedCategories(ctx context.Context, db *sql.DB, d repo.Dialect) error {
	checkQuery := d.Rebind(`SELECT id FROM categories WHERE name = ?`)
	insertQuery := d.Rebind(`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`)

	for _, name := range defaultCategories {
		var id string
		err := db.QueryRowContext(ctx, checkQuery, name).Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check category %q: %w", name, err)
		}

		createdAt := time.Now().UTC().Format(time.RFC3339)
		if _, err := db.ExecContext(ctx, insertQuery, name, name, createdAt); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	return nil
}
