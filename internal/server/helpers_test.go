package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/meeting-mbti/internal/config"
	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/server/ratelimit"
	"github.com/jonathan/meeting-mbti/internal/survey"
	"github.com/jonathan/meeting-mbti/internal/types"
)

const testPassword = "correct-horse-battery"

func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: 4, MinLength: 8}
}

func openTestStore(t *testing.T) *db.SQLiteDB {
	t.Helper()
	ctx := context.Background()
	store, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	return store
}

// newTestServer builds a server over a fresh SQLite database with rate
// limiting disabled unless rl is given.
func newTestServer(t *testing.T, rl *ratelimit.Config) *Server {
	t.Helper()
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}
	s, err := New(Config{
		Store: openTestStore(t),
		JWTConfig: &config.JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing-minimum-32-bytes",
			ExpirationHours:      24,
			GuestExpirationHours: 2,
		},
		PasswordConfig:    testPasswordConfig(),
		RateLimit:         rl,
		Registry:          prometheus.NewRegistry(),
		CORSAllowedOrigin: "https://app.example.com",
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// do sends a request through the full middleware chain
func do(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

// doWithHeader sends a bodiless request with a raw Authorization header
func doWithHeader(t *testing.T, s *Server, method, path, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// registerUser registers a fresh account and returns its token and ID
func registerUser(t *testing.T, s *Server, name string) (string, uuid.UUID) {
	t.Helper()
	w := do(t, s, http.MethodPost, "/v1/auth/register", "", types.CreateUserRequest{
		Name:     name,
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: testPassword,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[types.LoginResponse](t, w)
	return resp.Token, resp.User.ID
}

// startGuest opens a guest session and returns its token and ID
func startGuest(t *testing.T, s *Server) (string, uuid.UUID) {
	t.Helper()
	w := do(t, s, http.MethodPost, "/v1/auth/guest", "", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[types.GuestResponse](t, w)
	return resp.Token, resp.GuestID
}

// answersBody builds a survey request from an A/B choice pattern
func answersBody(t *testing.T, pattern string) map[string]any {
	t.Helper()
	a, err := survey.ParseChoices(pattern)
	require.NoError(t, err)
	return map[string]any{"answers": a}
}
