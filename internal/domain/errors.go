package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
)

// SeatsAlreadyBookedError reports exactly which of the requested seats are
// held by a committed booking for the showtime, so callers can re-render the
// seat map precisely.
type SeatsAlreadyBookedError struct {
	SeatIDs []int
}

func (e *SeatsAlreadyBookedError) Error() string {
	return fmt.Sprintf("seats already booked: %v", e.SeatIDs)
}

// Is makes errors.Is(err, ErrSeatAlreadyReserved) match, for callers that only
// care about the conflict class and not the offending seats.
func (e *SeatsAlreadyBookedError) Is(target error) bool {
	return target == ErrSeatAlreadyReserved
}
