package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health-tracker/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Issue(ctx context.Context, id auth.Identity) (string, time.Time, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func TestLogin_IssuesTokenForAccount(t *testing.T) {
	ctx := context.Background()
	issuer := new(mockIssuer)
	repo := newFakeRepo()
	svc := NewService(repo, plainHasher{}, issuer)

	exp := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	issuer.On("Issue", mock.Anything, mock.MatchedBy(func(id auth.Identity) bool {
		return id.Email == "ana@example.com" && id.AccountID > 0
	})).Return("signed-token", exp, nil).Twice()

	_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "secret1", FirstName: "Ana", LastName: "García"})
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", sess.Token)
	assert.Equal(t, exp, sess.ExpiresAt)

	issuer.AssertExpectations(t)
}

func TestLogin_IssuerFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	issuer := new(mockIssuer)
	svc := NewService(newFakeRepo(), plainHasher{}, issuer)

	issuer.On("Issue", mock.Anything, mock.Anything).Return("", time.Time{}, errors.New("signing key unavailable"))

	_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "secret1", FirstName: "Ana", LastName: "García"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidToken)
	assert.Contains(t, err.Error(), "signing key unavailable")

	// con contraseña incorrecta no se llega a firmar
	_, err = svc.Login(ctx, "ana@example.com", "wrong")
	require.Error(t, err)
	issuer.AssertNumberOfCalls(t, "Issue", 1)
}
