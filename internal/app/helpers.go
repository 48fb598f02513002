package app

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Prathikkurup/movie/internal/jsonutil"
	"github.com/go-chi/chi/v5"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

// readIdParam extracts a positive integer URL parameter. Anything else is
// reported as an invalid parameter.
func readIdParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, errInvalidIdParam(name)
	}
	return id, nil
}

type invalidIdParamError struct {
	name string
}

func errInvalidIdParam(name string) error {
	return invalidIdParamError{name: name}
}

func (e invalidIdParamError) Error() string {
	return "invalid " + e.name + " parameter"
}

// readIntQueryParam returns nil when the parameter is absent, so validation
// distinguishes "not provided" from "provided but invalid".
func readIntQueryParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errInvalidIdParam(name)
	}

	return &v, nil
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}
	return logger
}
