// Package nsa tracks draft NSA bookings awaiting workflow resolution. The
// CSC team resolves a draft into a concrete bookable slot outside this
// system; the queue records which drafts exist and which have resolved, and
// feeds the batch status update that moves them to standard-test-booked.
package nsa

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Clock returns the current time; injected for testability.
type Clock func() time.Time

// Entry is one queued NSA draft booking.
type Entry struct {
	BookingID        string
	BookingReference string
	EnqueuedAt       time.Time
	ResolvedAt       *time.Time
}

// Queue persists the NSA workflow queue in PostgreSQL.
type Queue struct {
	db    *sql.DB
	clock Clock
}

// QueueOption configures a Queue instance.
type QueueOption func(*Queue)

// WithClock sets the clock function for testability.
func WithClock(clock Clock) QueueOption {
	return func(q *Queue) {
		if clock != nil {
			q.clock = clock
		}
	}
}

// NewQueue constructs a PostgreSQL-backed NSA queue.
func NewQueue(db *sql.DB, opts ...QueueOption) *Queue {
	queue := &Queue{
		db:    db,
		clock: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(queue)
		}
	}
	return queue
}

// Enqueue records a freshly created draft NSA booking. Re-enqueueing the same
// booking id refreshes the reference and clears any stale resolution.
func (q *Queue) Enqueue(ctx context.Context, bookingID, bookingReference string) error {
	query := `
		INSERT INTO nsa_queue (booking_id, booking_reference, enqueued_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (booking_id) DO UPDATE SET
			booking_reference = EXCLUDED.booking_reference,
			enqueued_at = EXCLUDED.enqueued_at,
			resolved_at = NULL,
			applied_at = NULL
	`
	if _, err := q.db.ExecContext(ctx, query, bookingID, bookingReference, q.clock()); err != nil {
		return fmt.Errorf("enqueue nsa booking: %w", err)
	}
	return nil
}

// MarkResolved records that the NSA workflow resolved a draft into a bookable
// slot. Unknown booking ids are ignored; resolution messages can outlive the
// queue entry.
func (q *Queue) MarkResolved(ctx context.Context, bookingID string) error {
	query := `UPDATE nsa_queue SET resolved_at = $2 WHERE booking_id = $1 AND resolved_at IS NULL`
	if _, err := q.db.ExecContext(ctx, query, bookingID, q.clock()); err != nil {
		return fmt.Errorf("mark nsa booking resolved: %w", err)
	}
	return nil
}

// ListResolved returns up to limit resolved entries whose status update has
// not yet been applied to the CRM, oldest resolution first.
func (q *Queue) ListResolved(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT booking_id, booking_reference, enqueued_at, resolved_at
		FROM nsa_queue
		WHERE resolved_at IS NOT NULL AND applied_at IS NULL
		ORDER BY resolved_at
		LIMIT $1
	`
	rows, err := q.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list resolved nsa bookings: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.BookingID, &entry.BookingReference, &entry.EnqueuedAt, &entry.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan nsa queue entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nsa queue entries: %w", err)
	}
	return entries, nil
}

// MarkApplied records that the CRM status update went through for a batch of
// bookings. Uses a single array-bound statement instead of per-row updates.
func (q *Queue) MarkApplied(ctx context.Context, bookingIDs []string) error {
	if len(bookingIDs) == 0 {
		return nil
	}
	query := `UPDATE nsa_queue SET applied_at = $2 WHERE booking_id = ANY($1)`
	if _, err := q.db.ExecContext(ctx, query, pq.Array(bookingIDs), q.clock()); err != nil {
		return fmt.Errorf("mark nsa bookings applied: %w", err)
	}
	return nil
}
