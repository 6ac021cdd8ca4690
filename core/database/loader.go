package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pair-compare/core/table"

	"gorm.io/gorm"
)

var (
	// ErrTableNotFound is returned when the requested SQL table does not exist.
	ErrTableNotFound = errors.New("table not found")
	// ErrDisabled is returned when a table is requested without a database connection.
	ErrDisabled = errors.New("database is not configured")
)

// LoadTable reads every row of a SQL table into a tabular dataset.
// The table name is checked against the schema before it is queried.
func LoadTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Table, error) {
	if db == nil {
		return nil, ErrDisabled
	}
	if !db.WithContext(ctx).Migrator().HasTable(tableName) {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, tableName)
	}

	rows, err := db.WithContext(ctx).Table(tableName).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	return ScanRows(tableName, rows)
}

// ScanRows converts a result set into a table, inferring column kinds from the values.
func ScanRows(name string, rows *sql.Rows) (*table.Table, error) {
	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}

	var records [][]any
	for rows.Next() {
		values := make([]any, len(headers))
		ptrs := make([]any, len(headers))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", name, err)
		}
		for i, v := range values {
			// drivers hand back text columns as raw bytes
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		records = append(records, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows of %s: %w", name, err)
	}

	return table.FromValues(name, headers, records), nil
}
