package services

import (
	"context"
	"testing"

	"mangosense/config"
	mango_errors "mangosense/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(repo *fakeUserRepo) *AdminAuthService {
	return NewAdminAuthService(repo, &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiryMin:  15,
		RefreshExpiry: 14,
	})
}

func TestAdminLoginMintsTokenPair(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "admin@example.com", "verysecret", true, true)
	svc := newAdminService(repo)

	pair, got, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := svc.ParseAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, u.Email, claims.Email)
}

func TestAdminLoginNonSuperuser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@example.com", "verysecret", true, false)
	svc := newAdminService(repo)

	_, _, err := svc.Login(context.Background(), "user@example.com", "verysecret")
	assert.ErrorIs(t, err, mango_errors.ErrForbidden)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", true, true)
	svc := newAdminService(repo)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "verysecret")
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}

func TestAdminLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", false, true)
	svc := newAdminService(repo)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}

func TestAdminLoginEmptyCredentials(t *testing.T) {
	svc := newAdminService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, mango_errors.ErrInvalidInput)
}

func TestRefreshKeepsIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "admin@example.com", "verysecret", true, true)
	svc := newAdminService(repo)

	pair, _, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)

	access, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, u.Email, claims.Email)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", true, true)
	svc := newAdminService(repo)

	pair, _, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.Access)
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}

func TestRefreshRejectsTamperedToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", true, true)
	svc := newAdminService(repo)

	pair, _, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.Refresh + "AAAA")
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)

	_, err = svc.Refresh("")
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}

func TestRefreshRejectsForeignSecret(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", true, true)

	other := NewAdminAuthService(repo, &config.Config{
		JWTSecret:     "different-secret",
		JWTExpiryMin:  15,
		RefreshExpiry: 14,
	})
	pair, _, err := other.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)

	svc := newAdminService(repo)
	_, err = svc.Refresh(pair.Refresh)
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", true, true)

	// Negative refresh lifetime mints a token that is already expired.
	svc := NewAdminAuthService(repo, &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiryMin:  15,
		RefreshExpiry: -1,
	})

	pair, _, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.Refresh)
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}

func TestParseAccessTokenRejectsRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "verysecret", true, true)
	svc := newAdminService(repo)

	pair, _, err := svc.Login(context.Background(), "admin@example.com", "verysecret")
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, mango_errors.ErrUnauthorized)
}
