package handler

import (
	"context"
	"net/http"
	"testing"

	"mangosense/internal/transport/httpdto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterInvalidBody(t *testing.T) {
	router := newAccountRouter(newFakeUserRepo(), newFakeSessions())

	rec := postJSON(router, "/register", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid data format.", body.Error)
}

func TestRegisterMissingFields(t *testing.T) {
	router := newAccountRouter(newFakeUserRepo(), newFakeSessions())

	rec := postJSON(router, "/register", `{"email": "asha@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.Success)
	assert.Equal(t, []string{"All required fields must be provided."}, body.Errors)
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	router := newAccountRouter(repo, newFakeSessions())

	rec := postJSON(router, "/register", `{
		"first_name": "Asha",
		"last_name": "Rahman",
		"address": "12 Orchard Road, Rajshahi",
		"email": "asha@example.com",
		"password": "verysecret",
		"confirm_password": "verysecret"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body httpdto.RegisterResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Account created successfully! You may now log in", body.Message)
	_, err := uuid.Parse(body.UserID)
	assert.NoError(t, err)
	assert.Contains(t, repo.users, "asha@example.com")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	router := newAccountRouter(newFakeUserRepo(), newFakeSessions())

	rec := postJSON(router, "/register", `{
		"firstName": "Asha",
		"lastName": "Rahman",
		"address": "12 Orchard Road, Rajshahi",
		"email": "asha@example.com",
		"password": "verysecret",
		"confirmPassword": "different1"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Errors, "Passwords do not match.")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessions()
	u := seedUser(t, repo, "asha@example.com", "verysecret", true, false)
	router := newAccountRouter(repo, sessions)

	rec := postJSON(router, "/login", `{"email": "asha@example.com", "password": "verysecret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body httpdto.LoginResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful.", body.Message)
	assert.Equal(t, u.ID.String(), body.User.ID)
	assert.Equal(t, "Asha Rahman", body.User.FullName)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	var sid string
	for _, c := range cookies {
		if c.Name == SessionCookieName {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)
	assert.Contains(t, sessions.sessions, sid)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "asha@example.com", "verysecret", true, false)
	router := newAccountRouter(repo, newFakeSessions())

	rec := postJSON(router, "/login", `{"email": "asha@example.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid email or password.", body.Error)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "asha@example.com", "verysecret", false, false)
	router := newAccountRouter(repo, newFakeSessions())

	rec := postJSON(router, "/login", `{"email": "asha@example.com", "password": "verysecret"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Your account is deactivated. Please contact support.", body.Error)
}

func TestLoginInvalidEmail(t *testing.T) {
	router := newAccountRouter(newFakeUserRepo(), newFakeSessions())

	rec := postJSON(router, "/login", `{"email": "not-an-email", "password": "verysecret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Please enter a valid email address.", body.Error)
}

func TestLogoutWithoutCookie(t *testing.T) {
	router := newAccountRouter(newFakeUserRepo(), newFakeSessions())

	rec := postJSON(router, "/logout", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body httpdto.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "You are not logged in.", body.Error)
}

func TestLogoutTerminatesSession(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessions()
	u := seedUser(t, repo, "asha@example.com", "verysecret", true, false)
	router := newAccountRouter(repo, sessions)

	sid, err := sessions.Create(context.Background(), u.ID, u.Email)
	require.NoError(t, err)

	rec := postJSON(router, "/logout", "", &http.Cookie{Name: SessionCookieName, Value: sid})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body httpdto.LogoutResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Logout successful.", body.Message)
	assert.NotContains(t, sessions.sessions, sid)

	// Stale cookie after the session is gone.
	rec = postJSON(router, "/logout", "", &http.Cookie{Name: SessionCookieName, Value: sid})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
