package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-health-tracker/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	valid map[string]int64
}

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if id, ok := f.valid[token]; ok {
		return auth.Claims{AccountID: id}, nil
	}
	return auth.Claims{}, auth.ErrInvalidToken
}

func protected(verifier auth.AuthVerifier, dev bool) http.Handler {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := AccountID(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte{byte('0' + id)})
	})
	return AuthContext(verifier, dev)(RequireAuth(final))
}

func TestRequireAuth(t *testing.T) {
	v := fakeVerifier{valid: map[string]int64{"good": 7}}

	cases := []struct {
		name   string
		dev    bool
		setup  func(r *http.Request)
		status int
		body   string
	}{
		{"no token", false, func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"bearer ok", false, func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK, "7"},
		{"cookie ok", false, func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "good"}) }, http.StatusOK, "7"},
		{"bad token", false, func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusForbidden, ""},
		{"debug header ignored outside dev", false, func(r *http.Request) { r.Header.Set(DebugUserHeader, "3") }, http.StatusUnauthorized, ""},
		{"debug header in dev", true, func(r *http.Request) { r.Header.Set(DebugUserHeader, "3") }, http.StatusOK, "3"},
		{"debug header not numeric", true, func(r *http.Request) { r.Header.Set(DebugUserHeader, "abc") }, http.StatusUnauthorized, ""},
		{"token wins over debug header", true, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer good")
			r.Header.Set(DebugUserHeader, "3")
		}, http.StatusOK, "7"},
		{"bad token not rescued by debug header", true, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer nope")
			r.Header.Set(DebugUserHeader, "3")
		}, http.StatusForbidden, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()

			protected(v, tc.dev).ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestAuthContext_RejectedTokenDoesNotBlockPublicRoutes(t *testing.T) {
	v := fakeVerifier{}
	h := AuthContext(v, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetClaims(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := chimw.RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pets", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"bytes":5`)
	assert.Contains(t, out, `"path":"/api/pets"`)
	assert.Contains(t, out, `"request_id"`)
}

func TestAccountID_MissingClaims(t *testing.T) {
	_, err := AccountID(context.Background())
	require.Error(t, err)

	id, err := AccountID(WithClaims(context.Background(), auth.Claims{AccountID: 9}))
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}
