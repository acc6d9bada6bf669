package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/advent/dial"
)

// DefaultTable is the table SQL reads from when Table is empty.
const DefaultTable = "input_rotations"

// SQL reads instructions from a table with the columns
//
//	line_num INTEGER, rotation TEXT
//
// ordered by line_num. The queries are portable between Postgres and
// SQLite.
type SQL struct {
	DB    *sql.DB
	Table string
}

var identRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func tableName(table string) (string, error) {
	if table == "" {
		return DefaultTable, nil
	}
	if !identRegexp.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	return table, nil
}

func (s SQL) Instructions(ctx context.Context) ([]dial.Instruction, error) {
	table, err := tableName(s.Table)
	if err != nil {
		return nil, err
	}
	q := `
SELECT line_num, rotation
FROM ` + table + `
ORDER BY line_num;
`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", table, err)
	}
	defer rows.Close()

	var insns []dial.Instruction
	for rows.Next() {
		var (
			line int
			raw  string
		)
		if err := rows.Scan(&line, &raw); err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", table, err)
		}
		in, err := dial.Parse(raw)
		if err != nil {
			setLine(err, line)
			return nil, err
		}
		insns = append(insns, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", table, err)
	}
	return insns, nil
}

// Import creates table (if it doesn't exist) and inserts the non-blank
// raws with their 1-based line numbers, all in one transaction. The raw
// strings are stored as-is; they are parsed when read back.
func Import(ctx context.Context, db *sql.DB, table string, raws []string) (n int, err error) {
	table, err = tableName(table)
	if err != nil {
		return 0, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	create := `
CREATE TABLE IF NOT EXISTS ` + table + ` (
  line_num INTEGER NOT NULL,
  rotation TEXT NOT NULL
);
`
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return 0, fmt.Errorf("error creating %s: %w", table, err)
	}
	insert, err := tx.PrepareContext(ctx, `
INSERT INTO `+table+` (line_num, rotation)
VALUES ($1, $2);
`)
	if err != nil {
		return 0, err
	}
	defer insert.Close()
	for i, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if _, err := insert.ExecContext(ctx, i+1, raw); err != nil {
			return 0, fmt.Errorf("error inserting line %d: %w", i+1, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing: %w", err)
	}
	return n, nil
}
