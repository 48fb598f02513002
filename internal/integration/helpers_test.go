package integration_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fields whose values change per run and should not participate in
// response comparison.
var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"createdAt":   {},
	"bookingDate": {},
	"orderId":     {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
		if list, ok := m[k].([]any); ok {
			for _, item := range list {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(t.Context(), string(content))
	require.NoError(t, err)
}

// registeredUserCookies signs the user up if needed and logs them in,
// returning the session cookies for authenticated scenarios.
func (app *TestApp) registeredUserCookies(t testing.TB, email string) []*http.Cookie {
	t.Helper()

	signupBody := fmt.Sprintf(`{"email": %q, "password": %q}`, email, TestUserPassword)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(signupBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated && rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected signup status: %d", rec.Code)
	}

	loginBody := fmt.Sprintf(`{"email": %q, "password": %q}`, email, TestUserPassword)

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	return rec.Result().Cookies()
}

func (app *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	return app.registeredUserCookies(t, TestUserEmail)
}
