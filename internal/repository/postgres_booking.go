package repository

import (
	"context"
	"errors"

	"github.com/Prathikkurup/movie/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// lockWaitTimeout bounds how long a reservation waits on another
// transaction's row locks. A timed-out wait surfaces as a retryable
// conflict, not a fatal error.
const lockWaitTimeout = "3s"

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create atomically claims booking.Seats for booking.ShowtimeID. Existing
// booked_seats rows matching the requested seats are locked FOR UPDATE, so
// two overlapping reservations are serialized by the store: the loser either
// sees the winner's committed rows and gets a SeatsAlreadyBookedError, or
// trips the (showtime_id, seat_id) unique constraint. Disjoint seat sets
// commit independently.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+lockWaitTimeout+"'")
		if err != nil {
			return err
		}

		var ticketPrice pgtype.Numeric

		query := `SELECT ticket_price FROM showtimes WHERE id = $1`

		err = tx.QueryRow(ctx, query, booking.ShowtimeID).Scan(&ticketPrice)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		seatIds := make([]int, len(booking.Seats))
		for i, seat := range booking.Seats {
			seatIds[i] = seat.SeatID
		}

		query = `
			SELECT seat_id
			FROM booked_seats
			WHERE showtime_id = $1 AND seat_id = ANY($2::int[])
			FOR UPDATE
		`

		rows, err := tx.Query(ctx, query, booking.ShowtimeID, seatIds)
		if err != nil {
			return err
		}

		takenSeatIds, err := pgx.CollectRows(rows, pgx.RowTo[int])
		if err != nil {
			return err
		}

		if len(takenSeatIds) > 0 {
			return &domain.SeatsAlreadyBookedError{SeatIDs: takenSeatIds}
		}

		price := decimal.NewFromBigInt(ticketPrice.Int, ticketPrice.Exp)

		booking.OrderID = uuid.New()
		booking.Status = domain.BookingStatusReserved
		booking.TotalPrice = price.Mul(decimal.NewFromInt(int64(len(seatIds))))

		query = `
			INSERT INTO bookings (order_id, user_id, showtime_id, status, total_price, booking_date)
			VALUES ($1, $2, $3, $4, $5, NOW())
			RETURNING id, booking_date
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.OrderID,
			booking.UserID,
			booking.ShowtimeID,
			booking.Status,
			booking.TotalPrice).Scan(&booking.ID, &booking.BookingDate)

		if err != nil {
			return err
		}

		copyRows := make([][]any, 0, len(booking.Seats))
		for i := range booking.Seats {
			booking.Seats[i].BookingID = booking.ID
			booking.Seats[i].ShowtimeID = booking.ShowtimeID

			copyRows = append(copyRows, []any{
				booking.ID,
				booking.ShowtimeID,
				booking.Seats[i].SeatID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booked_seats"},
			[]string{"booking_id", "showtime_id", "seat_id"},
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// The unique constraint on (showtime_id, seat_id) is the last
			// line of defense for the exclusivity invariant; a lock timeout
			// means another reservation held the rows for too long. Both are
			// conflict-class and retryable.
			case pgerrcode.UniqueViolation, pgerrcode.LockNotAvailable:
				return domain.ErrSeatAlreadyReserved
			}
		}

		return err
	}

	return nil
}

// Cancel deletes the booking and its seat assignments in one transaction, so
// the seats become available in the same atomic step the booking disappears.
// Ownership is folded into the lookup: a non-owner gets the same not-found
// as a missing booking.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID, userID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var id int

		query := `SELECT id FROM bookings WHERE id = $1 AND user_id = $2`

		err := tx.QueryRow(ctx, query, bookingID, userID).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM booked_seats WHERE booking_id = $1`, bookingID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)

		return err
	})
}

// GetSummariesByUserId builds booking history with two queries merged in
// memory: one row per booking, then one row per seat assignment grouped
// under its booking. A single join would duplicate the booking row once per
// seat.
func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			m.title,
			s.start_time,
			t.name,
			t.location,
			b.total_price,
			b.booking_date
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theatres t ON s.theatre_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var summary domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&summary.BookingID,
			&summary.MovieTitle,
			&summary.StartTime,
			&summary.TheatreName,
			&summary.TheatreLocation,
			&summary.TotalPrice,
			&summary.BookingDate,
		)
		if err != nil {
			return nil, nil, err
		}

		summary.Seats = make([]string, 0)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(summaries) > 0 {
		err = p.attachSeatLabels(ctx, summaries)
		if err != nil {
			return nil, nil, err
		}
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return summaries, metadata, nil
}

func (p *PostgresBookingRepository) attachSeatLabels(ctx context.Context, summaries []domain.BookingSummary) error {
	bookingIds := make([]int, len(summaries))
	byBookingId := make(map[int]*domain.BookingSummary, len(summaries))

	for i := range summaries {
		bookingIds[i] = summaries[i].BookingID
		byBookingId[summaries[i].BookingID] = &summaries[i]
	}

	query := `
		SELECT bs.booking_id, se.seat_row, se.seat_number
		FROM booked_seats bs
		JOIN seats se ON bs.seat_id = se.id
		WHERE bs.booking_id = ANY($1::int[])
		ORDER BY se.seat_row, se.seat_number
	`

	rows, err := p.db.Query(ctx, query, bookingIds)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingId  int
			seatRow    string
			seatNumber int
		)

		err := rows.Scan(&bookingId, &seatRow, &seatNumber)
		if err != nil {
			return err
		}

		if summary, ok := byBookingId[bookingId]; ok {
			summary.Seats = append(summary.Seats, domain.SeatLabel(seatRow, seatNumber))
		}
	}

	return rows.Err()
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
