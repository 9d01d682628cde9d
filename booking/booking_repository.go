package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// db returns the locked transaction carried by ctx, if any.
func (r *Repository) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.pool
}

const bookingColumns = `id, "customerName", "customerContact", "bookingType", "carId", "driverId",
	"startDate", "endDate", status, "pickupLocation", "dropLocation",
	"totalAmount", "carRate", "driverRate", "extraKmPrice", "extraTimePrice",
	"adminId", "customerId", "createdAt"`

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerContact,
		&booking.Kind,
		&booking.CarID,
		&booking.DriverID,
		&booking.Start,
		&booking.End,
		&booking.Status,
		&booking.PickupLocation,
		&booking.DropLocation,
		&booking.TotalAmount,
		&booking.CarRate,
		&booking.DriverRate,
		&booking.ExtraKmPrice,
		&booking.ExtraTimePrice,
		&booking.AdminID,
		&booking.CustomerID,
		&booking.CreatedAt,
	)
	return booking, err
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetActiveBookings(ctx context.Context) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM rental.booking
            WHERE status NOT IN ('cancelled', 'rejected') AND "endDate" >= $1
            ORDER BY "startDate";
        `

	rows, err := r.db(ctx).Query(ctx, sql, time.Now())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM rental.booking WHERE id=$1;`

	booking, err := scanBooking(r.db(ctx).QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsPerCustomer(ctx context.Context, customerID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM rental.booking
            WHERE "customerId"=$1
            ORDER BY "createdAt" DESC;
        `

	rows, err := r.db(ctx).Query(ctx, sql, customerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for customer '%v': %w", customerID, err)
	}

	return collectBookings(rows)
}

func (r *Repository) FindActiveOverlapping(ctx context.Context, kind ResourceKind, resourceID string, interval Interval) ([]Booking, error) {
	column := `"carId"`
	if kind == ResourceDriver {
		column = `"driverId"`
	}

	sql := `SELECT ` + bookingColumns + `
            FROM rental.booking
            WHERE ` + column + `=$1
            AND status NOT IN ('cancelled', 'rejected')
            AND "startDate" < $3 AND "endDate" > $2;
        `

	rows, err := r.db(ctx).Query(ctx, sql, resourceID, interval.Start, interval.End)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping %v bookings: %w", kind, err)
	}

	return collectBookings(rows)
}

func (r *Repository) GetCarStatus(ctx context.Context, carID string) (string, error) {
	var status string
	err := r.db(ctx).QueryRow(ctx, `SELECT status FROM rental.car WHERE id=$1;`, carID).Scan(&status)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrResourceUnavailable
	}

	if err != nil {
		return "", fmt.Errorf("failed to fetch car '%v': %w", carID, err)
	}

	return status, nil
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO rental.booking(` + bookingColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
		`

	_, err := r.db(ctx).Exec(ctx, sql,
		booking.ID,
		booking.CustomerName,
		booking.CustomerContact,
		booking.Kind,
		booking.CarID,
		booking.DriverID,
		booking.Start,
		booking.End,
		booking.Status,
		booking.PickupLocation,
		booking.DropLocation,
		booking.TotalAmount,
		booking.CarRate,
		booking.DriverRate,
		booking.ExtraKmPrice,
		booking.ExtraTimePrice,
		booking.AdminID,
		booking.CustomerID,
		booking.CreatedAt,
	)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

// UpdateBooking only writes while the stored status is still fromStatus.
func (r *Repository) UpdateBooking(ctx context.Context, booking Booking, fromStatus string) error {
	sql := `
			UPDATE rental.booking
			SET
				status=$1,
				"totalAmount"=$2,
				"carRate"=$3,
				"driverRate"=$4,
				"extraKmPrice"=$5,
				"extraTimePrice"=$6
			WHERE id=$7 AND status=$8;
		`

	tag, err := r.db(ctx).Exec(ctx, sql,
		booking.Status,
		booking.TotalAmount,
		booking.CarRate,
		booking.DriverRate,
		booking.ExtraKmPrice,
		booking.ExtraTimePrice,
		booking.ID,
		fromStatus,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, booking.ID)
	}

	return nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, fromStatus, toStatus string) error {
	sql := `
            UPDATE rental.booking
            SET status=$1
            WHERE id=$2 AND status=$3;
        `

	tag, err := r.db(ctx).Exec(ctx, sql, toStatus, id, fromStatus)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, id)
	}

	return nil
}

func (r *Repository) missedWrite(ctx context.Context, id string) error {
	var exists bool
	err := r.db(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rental.booking WHERE id=$1);`, id).Scan(&exists)

	if err != nil {
		return fmt.Errorf("failed to check booking '%v': %w", id, err)
	}

	if !exists {
		return ErrBookingNotFound
	}

	return ErrBookingChanged
}

func (r *Repository) GetBookingCountPerCar(ctx context.Context) ([]CarBookingCount, error) {
	sql := `
		SELECT booking."carId", COUNT(*) as booking_count FROM rental.booking
		WHERE booking."carId" IS NOT NULL
		AND booking.status IN ('confirmed', 'completed')
		GROUP BY booking."carId"
		ORDER BY booking_count DESC
	`

	rows, err := r.db(ctx).Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per car: %w", err)
	}

	defer rows.Close()

	stats := []CarBookingCount{}

	for rows.Next() {
		var carID string
		var count int
		err := rows.Scan(&carID, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, CarBookingCount{CarID: carID, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	sql := `
		SELECT
			TRIM(TO_CHAR("startDate", 'Day')) as day_of_week,
			COUNT(*) as booking_count
		FROM
			rental.booking
		WHERE booking.status IN ('confirmed', 'completed')
		GROUP BY
			TRIM(TO_CHAR("startDate", 'Day'))
		ORDER BY
			booking_count DESC;
	`

	rows, err := r.db(ctx).Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per week day: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayBookingCount{}

	for rows.Next() {
		var weekDay string
		var count int
		err := rows.Scan(&weekDay, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, WeekDayBookingCount{WeekDay: weekDay, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, nil
}
