package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	custommiddleware "identity/internal/delivery/http/middleware"
	"identity/internal/delivery/http/validator"
	"identity/internal/domain/entity"
	mockUsecase "identity/internal/mocks/usecase"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *echo.Echo) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()

	return h, uc, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, uc, e := newTestHandler(t)

	now := time.Now()
	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}).Return(&usecase.RegisterOutput{
		User: &entity.User{
			ID:           1,
			Email:        "test@example.com",
			PasswordHash: "hashed_password",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}, nil).Once()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"test@example.com","password":"Password123!"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID           int64   `json:"id"`
			Email        string  `json:"email"`
			Password     string  `json:"password"`
			BiometricKey *string `json:"biometricKey"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Data.ID)
	assert.Equal(t, "test@example.com", body.Data.Email)
	assert.Equal(t, "hashed_password", body.Data.Password)
	assert.Nil(t, body.Data.BiometricKey)
}

func TestAuthHandler_Register_RejectsInvalidEmail(t *testing.T) {
	h, uc, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"not-an-email","password":"Password123!"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_RejectsMissingPassword(t *testing.T) {
	h, uc, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"test@example.com"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}).Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token"}, nil).Once()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"test@example.com","password":"Password123!"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"signed.jwt.token"`)
}

func TestAuthHandler_BiometricLogin_Success(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.On("BiometricLogin", mock.Anything, &usecase.BiometricLoginInput{
		BiometricKey: "device-fingerprint-abc123",
	}).Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token"}, nil).Once()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/biometric-login",
		`{"biometricKey":"device-fingerprint-abc123"}`)

	require.NoError(t, h.BiometricLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"signed.jwt.token"`)
}

func TestAuthHandler_SetBiometricKey_Success(t *testing.T) {
	h, uc, e := newTestHandler(t)

	key := "device-fingerprint-abc123"
	uc.On("SetBiometricKey", mock.Anything, &usecase.SetBiometricKeyInput{
		UserID:       42,
		BiometricKey: key,
	}).Return(&usecase.SetBiometricKeyOutput{
		User: &entity.User{
			ID:           42,
			Email:        "test@example.com",
			PasswordHash: "hashed_password",
			BiometricKey: &key,
		},
	}, nil).Once()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/biometric-key",
		`{"userId":42,"biometricKey":"device-fingerprint-abc123"}`)

	require.NoError(t, h.SetBiometricKey(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"biometricKey":"device-fingerprint-abc123"`)
}

func TestAuthHandler_Profile_ReadsTokenClaims(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/user/profile", "")
	c.Set(custommiddleware.ContextKeyUserID, int64(42))
	c.Set(custommiddleware.ContextKeyEmail, "test@example.com")

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":42`)
	assert.Contains(t, rec.Body.String(), `"email":"test@example.com"`)
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/user/profile", "")

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
