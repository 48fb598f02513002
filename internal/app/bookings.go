package app

import (
	"errors"
	"net/http"

	"github.com/Prathikkurup/movie/api"
	"github.com/Prathikkurup/movie/internal/domain"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats := make([]domain.BookedSeat, len(input.SeatIds))
	for i, seatId := range input.SeatIds {
		seats[i] = domain.BookedSeat{SeatID: seatId}
	}

	booking := domain.Booking{
		UserID:     app.contextGetUserId(r),
		ShowtimeID: input.ShowtimeId,
		Seats:      seats,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		var seatsTakenErr *domain.SeatsAlreadyBookedError

		switch {
		case errors.As(err, &seatsTakenErr):
			logger.Warn(
				"booking rejected, seats already taken",
				"showtime_id", booking.ShowtimeID,
				"seat_ids", seatsTakenErr.SeatIDs,
			)
			app.seatConflictResponse(w, r, seatsTakenErr.SeatIDs)
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			// Conflict detected by the unique constraint or a lock timeout,
			// so the exact seat set is unknown.
			logger.Warn("booking rejected on concurrent reservation", "showtime_id", booking.ShowtimeID)
			app.seatConflictResponse(w, r, nil)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			logger.Error("failed to create booking", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		BookingId:   booking.ID,
		OrderId:     booking.OrderID.String(),
		ShowtimeId:  booking.ShowtimeID,
		SeatsBooked: len(booking.Seats),
		TotalPrice:  api.NewMoney(booking.TotalPrice),
		Status:      string(booking.Status),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHistoryHandler(w http.ResponseWriter, r *http.Request) {
	params, err := readBookingHistoryParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	userId := app.contextGetUserId(r)

	summaries, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingHistoryResponse{
		Bookings: toApiBookingSummaries(summaries),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	bookingId, err := readIdParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	err = app.bookingRepo.Cancel(r.Context(), bookingId, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			logger.Error("failed to cancel booking", "error", err, "booking_id", bookingId)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.CancelBookingResponse{
		BookingId: bookingId,
		Message:   "Booking cancelled successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func readBookingHistoryParams(r *http.Request) (api.BookingHistoryParams, error) {
	var params api.BookingHistoryParams

	page, err := readIntQueryParam(r, "page")
	if err != nil {
		return params, err
	}

	pageSize, err := readIntQueryParam(r, "pageSize")
	if err != nil {
		return params, err
	}

	params.Page = page
	params.PageSize = pageSize

	return params, nil
}

func toApiBookingSummaries(summaries []domain.BookingSummary) []api.BookingSummary {
	result := make([]api.BookingSummary, len(summaries))

	for i, summary := range summaries {
		result[i] = api.BookingSummary{
			Id:              summary.BookingID,
			MovieTitle:      summary.MovieTitle,
			StartTime:       summary.StartTime,
			TheatreName:     summary.TheatreName,
			TheatreLocation: summary.TheatreLocation,
			TotalPrice:      numericToMoney(summary.TotalPrice),
			BookingDate:     summary.BookingDate,
			Seats:           summary.Seats,
		}
	}

	return result
}
