package app

import (
	"errors"
	"net/http"

	"github.com/Prathikkurup/movie/api"
	"github.com/Prathikkurup/movie/internal/domain"
)

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showtimeId, err := readIdParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seatMap, err := app.seatRepo.GetSeatMapByShowtime(r.Context(), showtimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("seat map not found for showtime", "showtime_id", showtimeId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toSeatMapResponse(seatMap)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(seatMap *domain.ShowtimeSeatMap) api.SeatMapResponse {
	seats := make([]api.Seat, len(seatMap.Seats))

	for i, seat := range seatMap.Seats {
		seats[i] = api.Seat{
			Id:       seat.ID,
			Row:      seat.Row,
			Number:   seat.Number,
			IsBooked: seat.IsBooked,
		}
	}

	return api.SeatMapResponse{
		ShowtimeId: seatMap.ShowtimeID,
		Seats:      seats,
	}
}
