package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
	"github.com/MKhiriev/go-room-design/models"
)

func TestSignup(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectActor("", false)

	req := models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: "pw1"}
	account := models.Account{ID: "u1", Email: req.Email, Username: req.Username}
	gomock.InOrder(
		m.accounts.EXPECT().Register(gomock.Any(), req).Return(account, nil),
		m.accounts.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "jwt"}, nil),
	)

	rr := serve(router, postForm("/auth/signup/", url.Values{
		"email":    {"a@x.com"},
		"username": {"alice"},
		"password": {"pw1"},
	}))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.AuthResponse{Message: "Registration successful", UserID: "u1", Token: "jwt"}, decodeBody[models.AuthResponse](t, rr))
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing fields", err: domainError(service.ErrValidation, "Email, username, and password are required"), wantStatus: http.StatusBadRequest},
		{name: "email taken", err: domainError(service.ErrConflict, "Email already registered"), wantStatus: http.StatusConflict},
		{name: "unexpected", err: domainError(service.ErrUnexpected, "Internal server error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.expectActor("", false)
			m.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Account{}, tt.err)

			rr := serve(router, postForm("/auth/signup/", url.Values{"email": {"a@x.com"}}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, service.Message(tt.err), decodeBody[models.ErrorResponse](t, rr).Error)
		})
	}
}

func TestLogin(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectActor("", false)

	account := models.Account{ID: "u1"}
	m.accounts.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "alice", Email: "a@x.com", Password: "pw1"}).
		Return(account, nil)
	m.accounts.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "jwt"}, nil)

	rr := serve(router, postForm("/auth/login/", url.Values{
		"username": {"alice"},
		"email":    {"a@x.com"},
		"password": {"pw1"},
	}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.AuthResponse{Message: "Login successful", UserID: "u1", Token: "jwt"}, decodeBody[models.AuthResponse](t, rr))
}

func TestLogin_WrongPassword(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectActor("", false)
	m.accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Account{}, domainError(service.ErrForbidden, "Invalid password"))

	rr := serve(router, postForm("/auth/login/", url.Values{"email": {"a@x.com"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Invalid password", decodeBody[models.ErrorResponse](t, rr).Error)
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "admin", wantStatus: http.StatusOK, wantBody: `{"message":"User is an admin"}`},
		{name: "not admin", checkErr: domainError(service.ErrForbidden, "User is not an admin"), wantStatus: http.StatusForbidden, wantBody: `{"error":"User is not an admin"}`},
		{name: "unknown user", checkErr: domainError(service.ErrNotFound, "User not found"), wantStatus: http.StatusForbidden, wantBody: `{"error":"User not found"}`},
		{name: "no user id", checkErr: domainError(service.ErrValidation, "User ID is required"), wantStatus: http.StatusForbidden, wantBody: `{"error":"User ID is required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.expectActor("u1", false)
			m.accounts.EXPECT().CheckAdmin(gomock.Any(), "u1").Return(models.Account{ID: "u1", IsAdmin: tt.checkErr == nil}, tt.checkErr)

			rr := serve(router, postForm("/auth/is_admin/", url.Values{"userid": {"u1"}}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWithActor_BearerToken(t *testing.T) {
	router, m := newTestRouter(t)

	m.accounts.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{UserID: "u7"}, nil)
	actor := m.expectActor("u7", false)
	m.rooms.EXPECT().List(gomock.Any(), actor.ID).Return(nil, nil)

	req := getQuery("/rooms/", url.Values{"userid": {"someone-else"}})
	req.Header.Set("Authorization", "Bearer good-token")
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"rooms":[]}`, rr.Body.String())
}

func TestWithActor_BadAuthorization(t *testing.T) {
	t.Run("malformed header", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := getQuery("/rooms/", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := serve(router, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.accounts.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, domainError(service.ErrForbidden, "Invalid or expired token"))

		req := getQuery("/rooms/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rr := serve(router, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Invalid or expired token", decodeBody[models.ErrorResponse](t, rr).Error)
	})
}

func TestWithBodyLimit(t *testing.T) {
	_, services := newServiceMocks(t)
	router := NewHandler(services, config.Server{MaxUploadSize: 16}, nil, logger.Nop()).Init()

	rr := serve(router, postMultipart(t, "/rooms/add/", map[string]string{"userid": "u1", "name": "Living"}, map[string]string{"room_file": "living.glb"}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
