package repository

import (
	"context"
	"encoding/json"

	"github.com/Prathikkurup/movie/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := `
		SELECT
			COUNT(*) OVER(),
			m.id,
			m.title,
			m.description,
			m.genre,
			m.duration_min,
			COALESCE(sh.showtimes, '[]') AS showtimes
		FROM movies m
		LEFT JOIN LATERAL (
			SELECT jsonb_agg(
				jsonb_build_object(
					'id', s.id,
					'startTime', s.start_time,
					'ticketPrice', s.ticket_price,
					'theatreName', t.name
				) ORDER BY s.start_time
			) AS showtimes
			FROM showtimes s
			JOIN theatres t ON s.theatre_id = t.id
			WHERE s.movie_id = m.id
		) sh ON true
		WHERE ((to_tsvector('english', m.title) @@ plainto_tsquery('english', $1)
			OR to_tsvector('english', m.description) @@ plainto_tsquery('english', $1))
			OR $1 = '')
		ORDER BY m.title
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie
		var showtimesJson json.RawMessage

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genre,
			&movie.DurationMin,
			&showtimesJson,
		)

		if err != nil {
			return nil, nil, err
		}

		if len(showtimesJson) > 0 {
			if err := json.Unmarshal(showtimesJson, &movie.Showtimes); err != nil {
				return nil, nil, err
			}
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}
