package repository

import (
	"context"
	"errors"

	"github.com/Prathikkurup/movie/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// GetSeatMapByShowtime resolves the showtime's theatre and left-joins the
// theatre's seat master list against live booked_seats rows for that
// showtime. A seat with no matching assignment is available. Runs with
// read-committed visibility and takes no locks.
func (p *PostgresSeatRepository) GetSeatMapByShowtime(ctx context.Context, showtimeID int) (*domain.ShowtimeSeatMap, error) {
	var theatreID int

	query := `SELECT theatre_id FROM showtimes WHERE id = $1`

	err := p.db.QueryRow(ctx, query, showtimeID).Scan(&theatreID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `
		SELECT
			se.id,
			se.seat_row,
			se.seat_number,
			bs.seat_id IS NOT NULL AS is_booked
		FROM seats se
		LEFT JOIN booked_seats bs
			ON se.id = bs.seat_id AND bs.showtime_id = $1
		WHERE se.theatre_id = $2
		ORDER BY se.seat_row, se.seat_number
	`

	rows, err := p.db.Query(ctx, query, showtimeID, theatreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatMap := &domain.ShowtimeSeatMap{
		ShowtimeID: showtimeID,
		TheatreID:  theatreID,
		Seats:      make([]domain.Seat, 0),
	}

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(&seat.ID, &seat.Row, &seat.Number, &seat.IsBooked)
		if err != nil {
			return nil, err
		}

		seatMap.Seats = append(seatMap.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// A theatre with no configured seats cannot render a seat map; this is
	// different from "all seats available", which returns every seat with
	// IsBooked false.
	if len(seatMap.Seats) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return seatMap, nil
}
