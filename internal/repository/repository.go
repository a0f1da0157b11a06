// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Column names that appear in SQL text are constants of this package.
// Request data only ever reaches a statement as a bound parameter.
package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoFields is returned when a write payload names no recognised column.
	ErrNoFields = errors.New("no valid fields")
)

// DBTX is the subset of a pgx pool the repositories use. *pgxpool.Pool
// satisfies it, and so does a pgxmock pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// columnSet collects the columns of a partial write in a fixed order
// together with their arguments.
type columnSet struct {
	cols []string
	args []any
}

// setIfPresent adds col when v was sent, binding NULL for an explicit null.
func setIfPresent[T any](s *columnSet, col string, v model.Optional[T]) {
	if !v.IsSet() {
		return
	}
	s.cols = append(s.cols, col)
	s.args = append(s.args, v.Arg())
}

func (s *columnSet) empty() bool {
	return len(s.cols) == 0
}

// assignments renders "a = $1, b = $2".
func (s *columnSet) assignments() string {
	parts := make([]string, len(s.cols))
	for i, col := range s.cols {
		parts[i] = col + " = $" + strconv.Itoa(i+1)
	}
	return strings.Join(parts, ", ")
}

// names renders "a, b".
func (s *columnSet) names() string {
	return strings.Join(s.cols, ", ")
}

// placeholders renders "$1, $2".
func (s *columnSet) placeholders() string {
	parts := make([]string, len(s.cols))
	for i := range s.cols {
		parts[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(parts, ", ")
}

// nextPlaceholder is the placeholder following the collected arguments.
func (s *columnSet) nextPlaceholder() string {
	return "$" + strconv.Itoa(len(s.args)+1)
}

// deleteByID deletes one row and reports whether it existed. The
// transaction commits in both cases.
func deleteByID(ctx context.Context, tx pgx.Tx, query, id string) (bool, error) {
	var deletedID string
	err := tx.QueryRow(ctx, query, id).Scan(&deletedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
