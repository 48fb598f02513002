package main

import (
	"log/slog"
	"os"

	"github.com/Prathikkurup/movie/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
