package api

import (
	"time"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBookingRequest struct {
	ShowtimeId int   `json:"showtimeId" validate:"required,gt=0"`
	SeatIds    []int `json:"seatIds" validate:"required,min=1,unique,dive,gt=0"`
}

type BookingResponse struct {
	BookingId   int             `json:"bookingId"`
	OrderId     string          `json:"orderId"`
	ShowtimeId  int             `json:"showtimeId"`
	SeatsBooked int    `json:"seatsBooked"`
	TotalPrice  Money  `json:"totalPrice"`
	Status      string `json:"status"`
}

// ConflictResponse carries the exact seats that were already taken, so the
// client can re-render the seat map without another round trip.
type ConflictResponse struct {
	Message       string    `json:"message"`
	BookedSeatIds []int     `json:"bookedSeatIds"`
	RequestId     string    `json:"requestId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type BookingSummary struct {
	Id              int       `json:"id"`
	MovieTitle      string    `json:"movieTitle"`
	StartTime       time.Time `json:"startTime"`
	TheatreName     string    `json:"theatreName"`
	TheatreLocation string    `json:"theatreLocation"`
	TotalPrice      Money     `json:"totalPrice"`
	BookingDate     time.Time `json:"bookingDate"`
	Seats           []string  `json:"seats"`
}

type BookingHistoryResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata Metadata         `json:"metadata"`
}

type BookingHistoryParams struct {
	Page     *int `validate:"omitempty,gte=1"`
	PageSize *int `validate:"omitempty,gte=1,lte=100"`
}

type CancelBookingResponse struct {
	BookingId int    `json:"bookingId"`
	Message   string `json:"message"`
}

type Seat struct {
	Id       int    `json:"id"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	IsBooked bool   `json:"isBooked"`
}

type SeatMapResponse struct {
	ShowtimeId int    `json:"showtimeId"`
	Seats      []Seat `json:"seats"`
}

type Showtime struct {
	Id          int       `json:"id"`
	StartTime   time.Time `json:"startTime"`
	TicketPrice Money     `json:"ticketPrice"`
	TheatreName string    `json:"theatreName"`
}

type Movie struct {
	Id          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	DurationMin int        `json:"durationMin"`
	Showtimes   []Showtime `json:"showtimes"`
}

type MovieListResponse struct {
	Movies   []Movie  `json:"movies"`
	Metadata Metadata `json:"metadata"`
}

type MovieListParams struct {
	Page     *int   `validate:"omitempty,gte=1"`
	PageSize *int   `validate:"omitempty,gte=1,lte=100"`
	Term     string `validate:"omitempty,max=100"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}
