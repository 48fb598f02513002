package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Movie struct {
	ID          int
	Title       string
	Description string
	Genre       string
	DurationMin int
	Showtimes   []MovieShowtime
}

// MovieShowtime is the showtime projection embedded in movie listings.
type MovieShowtime struct {
	ID          int
	StartTime   time.Time
	TicketPrice pgtype.Numeric
	TheatreName string
}

type MovieFilters struct {
	Page     int
	PageSize int
	Term     string
}

func (f MovieFilters) Limit() int {
	return f.PageSize
}

func (f MovieFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
}
