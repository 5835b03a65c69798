package dataset

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/config"
)

// OpenDB opens a Postgres connection using the PG* environment settings.
func OpenDB() (*sql.DB, error) {
	host := config.GetEnv("PGHOST", "localhost")
	port := config.GetEnv("PGPORT", "5432")
	user := config.GetEnv("PGUSER", "postgres")
	password := config.GetEnv("PGPASSWORD", "postgres")
	dbname := config.GetEnv("PGDATABASE", "nycha")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// LoadTable reads an entire table into a Relation, taking the column names
// from the result set so any comparison dataset schema works.
func LoadTable(db *sql.DB, table string) (Relation, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return Relation{}, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Relation{}, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	rel := Relation{Header: cols}
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Relation{}, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}

		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		rel.Rows = append(rel.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Relation{}, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return rel, nil
}
