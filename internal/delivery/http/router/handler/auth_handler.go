// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"identity/internal/delivery/http/middleware"
	"identity/internal/delivery/http/response"
	"identity/internal/domain/entity"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the identity endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type biometricLoginRequest struct {
	BiometricKey string `json:"biometricKey" validate:"required"`
}

type setBiometricKeyRequest struct {
	UserID       int64  `json:"userId" validate:"required"`
	BiometricKey string `json:"biometricKey" validate:"required"`
}

// userPayload is the wire shape of a user record. Register returns the full
// stored record, password hash included under "password"; clients depend on
// that shape, so it stays.
type userPayload struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	BiometricKey *string   `json:"biometricKey"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type tokenPayload struct {
	AccessToken string `json:"accessToken"`
}

func toUserPayload(user *entity.User) *userPayload {
	return &userPayload{
		ID:           user.ID,
		Email:        user.Email,
		Password:     user.PasswordHash,
		BiometricKey: user.BiometricKey,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserPayload(output.User), "User registered successfully")
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPayload{AccessToken: output.AccessToken}, "Login successful")
}

// BiometricLogin handles the biometric login request.
func (h *AuthHandler) BiometricLogin(c echo.Context) error {
	var req biometricLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid biometric login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.BiometricLogin(c.Request().Context(), &usecase.BiometricLoginInput{
		BiometricKey: req.BiometricKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPayload{AccessToken: output.AccessToken}, "Login successful")
}

// SetBiometricKey handles the biometric key binding request.
func (h *AuthHandler) SetBiometricKey(c echo.Context) error {
	var req setBiometricKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid biometric key input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SetBiometricKey(c.Request().Context(), &usecase.SetBiometricKeyInput{
		UserID:       req.UserID,
		BiometricKey: req.BiometricKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserPayload(output.User), "Biometric key bound successfully")
}

// Profile returns the identity baked into the caller's access token. It sits
// behind the auth middleware and exists so the token format stays verifiable
// end to end.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	email, _ := c.Get(middleware.ContextKeyEmail).(string)

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": userID,
		"email":  email,
	}, "Profile retrieved successfully")
}

// Hello is a trivial greeting endpoint.
func Hello(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Hello!"}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
