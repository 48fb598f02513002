package integration_test

const (
	dbName         = "movie_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	// User related constants
	TestUserId       = 1
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Seed data constants, kept in sync with testdata/seed_up.sql
	TestShowtimeId    = 1
	TestTicketPrice   = "12.50"
	TestMovieTitle    = "Test Movie"
	TestTheatreName   = "Test Theatre"
	SeatA1            = 1
	SeatA2            = 2
	SeatA3            = 3
	MissingShowtimeId = 999
)
