package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "reserved"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking owns its BookedSeats: they are created in the same transaction that
// creates the booking and deleted in the same transaction that deletes it.
// TotalPrice is snapshotted at creation, so later showtime price changes never
// affect a committed booking.
type Booking struct {
	ID          int
	OrderID     uuid.UUID
	UserID      int
	ShowtimeID  int
	Status      BookingStatus
	TotalPrice  decimal.Decimal
	BookingDate time.Time
	Seats       []BookedSeat
}

// BookedSeat is the junction fact "this seat is claimed for this showtime by
// this booking". A (ShowtimeID, SeatID) pair appears in at most one live row.
type BookedSeat struct {
	BookingID  int
	ShowtimeID int
	SeatID     int
}

type BookingSummary struct {
	BookingID       int
	MovieTitle      string
	StartTime       time.Time
	TheatreName     string
	TheatreLocation string
	TotalPrice      pgtype.Numeric
	BookingDate     time.Time
	Seats           []string
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	Cancel(ctx context.Context, bookingID, userID int) error
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
}
