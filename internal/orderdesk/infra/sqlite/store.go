// Package sqlite provides a SQLite-backed implementation of
// ports.OrderStore.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa — the HTTP handlers read and insert while the scheduled reset job
// may be deleting.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/ports"

	// Register the pure-Go SQLite driver.
	// modernc.org/sqlite avoids CGO, which keeps the Docker build on Alpine
	// trivial.
	_ "modernc.org/sqlite"
)

// opTimeout bounds every store round trip. Nothing in the system is allowed
// to block longer than one such round trip.
const opTimeout = 5 * time.Second

// schema is the DDL executed once on startup.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    -- Surrogate primary key — auto-incremented by SQLite.
    id            INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Client-supplied business identifier. Not UNIQUE: two tills can
    -- legitimately reuse a daily counter.
    order_id      INTEGER NOT NULL,

    -- JSON array of line items. Caller-trusted blob; there is no catalog
    -- to join against.
    items         TEXT    NOT NULL DEFAULT '[]',

    total         REAL    NOT NULL DEFAULT 0,

    -- Fixed-width UTC timestamp (see time.go). Lexicographic order equals
    -- chronological order, so range predicates are plain string compares.
    date          TEXT    NOT NULL,

    status        TEXT    NOT NULL,

    table_number  INTEGER,
    customer_name TEXT    NOT NULL DEFAULT ''
);

-- Index for the hot queries: sum/fetch/delete by status and day window.
CREATE INDEX IF NOT EXISTS idx_orders_status_date ON orders(status, date);
`

var _ ports.OrderStore = (*Store)(nil)

// Store is the SQLite implementation of ports.OrderStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	store, err := sqlite.Open("./data/orders.db")
func Open(path string) (*Store, error) {
	// The pure-Go driver uses _pragma query parameters to configure
	// connection state. WAL enables concurrent readers; busy_timeout waits
	// for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

// Insert persists o and returns it with the surrogate id set.
func (s *Store) Insert(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("sqlite: marshal items for order %d: %w", o.OrderID, err)
	}

	const q = `
		INSERT INTO orders
			(order_id, items, total, date, status, table_number, customer_name)
		VALUES
			(?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, q,
		o.OrderID,
		string(items),
		o.Total,
		formatTime(o.Date),
		string(o.Status),
		o.TableNumber,
		o.CustomerName,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert order %d: %w", o.OrderID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert order %d: last insert id: %w", o.OrderID, err)
	}

	stored := *o
	stored.ID = id
	return &stored, nil
}

const selectColumns = `id, order_id, items, total, date, status, table_number, customer_name`

// FindAll returns every stored order, oldest first.
func (s *Store) FindAll(ctx context.Context) ([]domain.Order, error) {
	return s.query(ctx, `SELECT `+selectColumns+` FROM orders ORDER BY date, id`)
}

// FindByStatus returns the orders with the given status, oldest first.
func (s *Store) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	return s.query(ctx,
		`SELECT `+selectColumns+` FROM orders WHERE status = ? ORDER BY date, id`,
		string(status))
}

// FindByDateRangeAndStatus returns the orders with the given status dated
// within [start, end).
func (s *Store) FindByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) ([]domain.Order, error) {
	return s.query(ctx,
		`SELECT `+selectColumns+` FROM orders WHERE status = ? AND date >= ? AND date < ? ORDER BY date, id`,
		string(status), formatTime(start), formatTime(end))
}

// SumByStatus sums total across orders with the given status.
// COALESCE makes the no-rows case an exact 0.
func (s *Store) SumByStatus(ctx context.Context, status domain.Status) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var sum float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ?`,
		string(status)).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sqlite: sum by status %q: %w", status, err)
	}
	return sum, nil
}

// SumByDateRangeAndStatus sums total across orders with the given status
// dated within [start, end).
func (s *Store) SumByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var sum float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ? AND date >= ? AND date < ?`,
		string(status), formatTime(start), formatTime(end)).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sqlite: sum by range and status %q: %w", status, err)
	}
	return sum, nil
}

// DeleteByIDs removes the orders with the given surrogate ids.
func (s *Store) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("sqlite: delete by ids: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByDateRangeAndStatus removes the orders with the given status dated
// within [start, end). The filter is re-evaluated at delete time; an order
// inserted between a caller's read and this call is fair game if it matches.
func (s *Store) DeleteByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM orders WHERE status = ? AND date >= ? AND date < ?`,
		string(status), formatTime(start), formatTime(end))
	if err != nil {
		return 0, fmt.Errorf("sqlite: delete by range and status %q: %w", status, err)
	}
	return res.RowsAffected()
}

// DeleteAll wipes the collection. No job calls this; it exists for
// operator tooling only.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM orders`)
	if err != nil {
		return 0, fmt.Errorf("sqlite: delete all: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate orders: %w", err)
	}
	return out, nil
}

func scanOrder(rows *sql.Rows) (*domain.Order, error) {
	var (
		o           domain.Order
		items       string
		date        string
		status      string
		tableNumber sql.NullInt64
	)
	err := rows.Scan(&o.ID, &o.OrderID, &items, &o.Total, &date, &status, &tableNumber, &o.CustomerName)
	if err != nil {
		return nil, fmt.Errorf("sqlite: scan order: %w", err)
	}

	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return nil, fmt.Errorf("sqlite: unmarshal items for order %d: %w", o.OrderID, err)
	}
	o.Date, err = parseTime(date)
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	if tableNumber.Valid {
		v := tableNumber.Int64
		o.TableNumber = &v
	}
	return &o, nil
}
