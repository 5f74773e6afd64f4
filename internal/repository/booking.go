package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, table_id, booking_date, slot, party_size, name, email, phone, status, created_at, updated_at, cancelled_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// TryReserve inserts the booking for (tableID, date, slot) in one statement.
// The partial unique index on active bookings serializes concurrent attempts:
// the loser gets a unique violation, surfaced as domain.ErrSlotTaken.
func (r *BookingRepository) TryReserve(ctx context.Context, tableID int64, date time.Time, slot string, draft domain.BookingDraft) (*domain.Booking, error) {
	query := `INSERT INTO bookings (id, table_id, booking_date, slot, party_size, name, email, phone, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
			  RETURNING ` + bookingColumns

	row := r.db.Master.QueryRowContext(
		ctx, query,
		draft.ID, tableID, date, slot, draft.PartySize,
		draft.Name, draft.Email, draft.Phone, draft.Status, draft.CreatedAt,
	)

	b, err := scanBooking(row)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrSlotTaken
		}
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ActiveForSlot(ctx context.Context, date time.Time, slot string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE booking_date = $1 AND slot = $2 AND status = ANY($3)
			  ORDER BY table_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, slot, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("active bookings for slot: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE booking_date = $1
			  ORDER BY slot, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// UpdateFields applies the patch in a single UPDATE. For patches that move
// the booking to another (table, date, slot) the same partial unique index
// that guards TryReserve rejects a taken target slot, so securing the new
// slot and releasing the old one is one atomic step.
func (r *BookingRepository) UpdateFields(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id}
	next := 2

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, next))
		args = append(args, value)
		next++
	}

	if patch.TableID != nil {
		add("table_id", *patch.TableID)
	}
	if patch.Date != nil {
		add("booking_date", *patch.Date)
	}
	if patch.Slot != nil {
		add("slot", *patch.Slot)
	}
	if patch.PartySize != nil {
		add("party_size", *patch.PartySize)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
		if *patch.Status == domain.BookingStatusCancelled {
			set = append(set, "cancelled_at = NOW()")
		}
	}

	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), bookingColumns)

	row := r.db.Master.QueryRowContext(ctx, query, args...)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrSlotTaken
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete booking rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) CompletePast(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1
			    AND booking_date + slot::time < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted, now,
	)
	if err != nil {
		return nil, fmt.Errorf("complete past bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var cancelledAt sql.NullTime
	if err := row.Scan(
		&b.ID, &b.TableID, &b.Date, &b.Slot, &b.PartySize,
		&b.Name, &b.Email, &b.Phone, &b.Status,
		&b.CreatedAt, &b.UpdatedAt, &cancelledAt,
	); err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
