package mocks

import (
	"context"

	"github.com/Prathikkurup/movie/internal/domain"
)

type MockSeatRepo struct {
	GetSeatMapByShowtimeFunc func(ctx context.Context, showtimeID int) (*domain.ShowtimeSeatMap, error)
}

func (m *MockSeatRepo) GetSeatMapByShowtime(ctx context.Context, showtimeID int) (*domain.ShowtimeSeatMap, error) {
	return m.GetSeatMapByShowtimeFunc(ctx, showtimeID)
}
