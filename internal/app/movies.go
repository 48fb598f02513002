package app

import (
	"math/big"
	"net/http"

	"github.com/Prathikkurup/movie/api"
	"github.com/Prathikkurup/movie/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetMoviesHandler(w http.ResponseWriter, r *http.Request) {
	params, err := readMovieListParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toApiMovies(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func readMovieListParams(r *http.Request) (api.MovieListParams, error) {
	var params api.MovieListParams

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
	params.Term = r.URL.Query().Get("term")

	return params, nil
}

func toMovieFilters(params api.MovieListParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Term:     params.Term,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}

	return filters
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	result := make([]api.Movie, len(movies))

	for i, movie := range movies {
		showtimes := make([]api.Showtime, len(movie.Showtimes))
		for j, showtime := range movie.Showtimes {
			showtimes[j] = api.Showtime{
				Id:          showtime.ID,
				StartTime:   showtime.StartTime,
				TicketPrice: numericToMoney(showtime.TicketPrice),
				TheatreName: showtime.TheatreName,
			}
		}

		result[i] = api.Movie{
			Id:          movie.ID,
			Title:       movie.Title,
			Description: movie.Description,
			Genre:       movie.Genre,
			DurationMin: movie.DurationMin,
			Showtimes:   showtimes,
		}
	}

	return result
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

func numericToMoney(n pgtype.Numeric) api.Money {
	if !n.Valid || n.Int == nil {
		return api.NewMoney(decimal.Zero)
	}
	return api.NewMoney(decimal.NewFromBigInt(new(big.Int).Set(n.Int), n.Exp))
}
