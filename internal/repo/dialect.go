package repo

import (
	"strconv"
	"strings"
)

// Dialect abstracts the differences between the supported storage engines.
// Repositories write queries with '?' placeholders and call Rebind; they never
// branch on engine identity. The type methods feed schema creation, since the
// engines disagree on indexable string columns and float types.
type Dialect interface {
	Name() string
	Rebind(query string) string
	// TextKeyType is the column type for primary and foreign key ids.
	TextKeyType() string
	// NameType is the column type for name columns that carry a unique index.
	NameType() string
	// TextType is the column type for free-form text.
	TextType() string
	// DateTimeType is the column type for timestamps, which are stored as
	// RFC3339 UTC strings on every engine.
	DateTimeType() string
	FloatType() string
}

// SQLiteDialect targets the embedded file-backed engine (modernc.org/sqlite).
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string          { return "sqlite" }
func (SQLiteDialect) Rebind(q string) string { return q }
func (SQLiteDialect) TextKeyType() string   { return "TEXT" }
func (SQLiteDialect) NameType() string      { return "TEXT" }
func (SQLiteDialect) TextType() string      { return "TEXT" }
func (SQLiteDialect) DateTimeType() string  { return "TEXT" }
func (SQLiteDialect) FloatType() string     { return "REAL" }

// MySQLDialect targets the MySQL client/server engine. Key and unique columns
// need a bounded length to be indexable.
type MySQLDialect struct{}

func (MySQLDialect) Name() string          { return "mysql" }
func (MySQLDialect) Rebind(q string) string { return q }
func (MySQLDialect) TextKeyType() string   { return "VARCHAR(64)" }
func (MySQLDialect) NameType() string      { return "VARCHAR(191)" }
func (MySQLDialect) TextType() string      { return "TEXT" }
func (MySQLDialect) DateTimeType() string  { return "VARCHAR(40)" }
func (MySQLDialect) FloatType() string     { return "DOUBLE" }

// PostgresDialect targets the PostgreSQL client/server engine, which numbers
// its bind parameters instead of using '?'.
type PostgresDialect struct{}

func (PostgresDialect) Name() string         { return "postgres" }
func (PostgresDialect) TextKeyType() string  { return "TEXT" }
func (PostgresDialect) NameType() string     { return "TEXT" }
func (PostgresDialect) TextType() string     { return "TEXT" }
func (PostgresDialect) DateTimeType() string { return "TEXT" }
func (PostgresDialect) FloatType() string    { return "DOUBLE PRECISION" }

// Rebind rewrites '?' placeholders into '$1'..'$n'. Queries hold no string
// literals, so a plain scan is enough.
func (PostgresDialect) Rebind(q string) string {
	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for i := 0; i < len(q); i++ {
		if q[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}
