// Package storage implements the transaction store on SQLite for callers who
// want the demo data to survive restarts. It satisfies the same ports as the
// in-memory store; time-frame filtering happens in Go so the classifier stays
// the single source of truth.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"billfold/internal/core"
	"billfold/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Create implements store.TransactionWriter.
func (r *SQLiteRepository) Create(ctx context.Context, tx store.NewTransaction) (core.Transaction, error) {
	date := tx.Date
	if date.IsZero() {
		date = r.now()
	}

	// The date is stored with its offset intact: classification compares
	// calendar fields, so the wall clock must survive the round trip.
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (category, amount_cents, date) VALUES (?, ?, ?)`,
		tx.Category, tx.Amount.Cents, date,
	)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}

	created := core.Transaction{ID: id, Category: tx.Category, Amount: tx.Amount, Date: date}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", created.ID,
		"category", created.Category,
		"amount_cents", created.Amount.Cents)

	return created, nil
}

// List implements store.TransactionLister. Rows are loaded newest first and
// filtered through the time-frame classifier.
func (r *SQLiteRepository) List(ctx context.Context, frame core.TimeFrame) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, amount_cents, date FROM transactions ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	now := r.now()
	out := make([]core.Transaction, 0)
	for rows.Next() {
		var (
			tx    core.Transaction
			cents int64
			date  time.Time
		)
		if err := rows.Scan(&tx.ID, &tx.Category, &cents, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Amount = core.Money{Cents: cents}
		tx.Date = date
		if frame.Contains(now, tx.Date) {
			out = append(out, tx)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// SeedIfEmpty loads the demonstration set when the table holds no rows yet.
func (r *SQLiteRepository) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return fmt.Errorf("count transactions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, tx := range store.SeedTransactions(r.now()) {
		if _, err := r.Create(ctx, tx); err != nil {
			return fmt.Errorf("seed transaction %q: %w", tx.Category, err)
		}
	}

	slog.InfoContext(ctx, "Seeded demonstration transactions", "count", len(store.SeedTransactions(r.now())))
	return nil
}
