package token

import (
	"context"
	"testing"
	"time"

	"pet-health-tracker/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(Config{Secret: testSecret, Issuer: "pets-test", TTL: time.Hour})
	require.NoError(t, err)
	return s
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	raw, exp, err := s.Issue(ctx, auth.Identity{AccountID: 42, Email: "ana@example.com"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	c, err := s.Verify(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.AccountID)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.NotEmpty(t, c.TokenID)
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	a, _, err := s.Issue(ctx, auth.Identity{AccountID: 1})
	require.NoError(t, err)
	b, _, err := s.Issue(ctx, auth.Identity{AccountID: 1})
	require.NoError(t, err)

	ca, err := s.Verify(ctx, a)
	require.NoError(t, err)
	cb, err := s.Verify(ctx, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.TokenID, cb.TokenID)
}

func TestVerify_Rejects(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	t.Run("expired", func(t *testing.T) {
		raw, _, err := s.Issue(ctx, auth.Identity{AccountID: 1})
		require.NoError(t, err)

		later := newTestService(t)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = later.Verify(ctx, raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewService(Config{Secret: "another-secret-abcdef", Issuer: "pets-test", TTL: time.Hour})
		require.NoError(t, err)
		raw, _, err := other.Issue(ctx, auth.Identity{AccountID: 1})
		require.NoError(t, err)

		_, err = s.Verify(ctx, raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewService(Config{Secret: testSecret, Issuer: "someone-else", TTL: time.Hour})
		require.NoError(t, err)
		raw, _, err := other.Issue(ctx, auth.Identity{AccountID: 1})
		require.NoError(t, err)

		_, err = s.Verify(ctx, raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		c := jwt.MapClaims{"sub": "1", "iss": "pets-test", "exp": time.Now().Add(time.Hour).Unix()}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.Verify(ctx, raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		c := jwt.MapClaims{"sub": "abc", "iss": "pets-test", "exp": time.Now().Add(time.Hour).Unix()}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = s.Verify(ctx, raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Verify(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(Config{Secret: "short", TTL: time.Hour})
	assert.Error(t, err)

	_, err = NewService(Config{Secret: testSecret})
	assert.Error(t, err)
}
