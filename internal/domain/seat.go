package domain

import (
	"context"
	"fmt"
)

// Seat is static master data per theatre, independent of any showtime.
type Seat struct {
	ID       int
	Row      string
	Number   int
	IsBooked bool
}

type ShowtimeSeatMap struct {
	ShowtimeID int
	TheatreID  int
	Seats      []Seat
}

// SeatLabel renders the user-facing label for a seat, e.g. "A12".
func SeatLabel(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}

type SeatRepository interface {
	GetSeatMapByShowtime(ctx context.Context, showtimeID int) (*ShowtimeSeatMap, error)
}
