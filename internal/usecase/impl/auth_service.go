// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It is stateless across
// requests; all shared mutable state lives in the storage engine.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account from an email and a password.
//
// The existence pre-check and the insert run inside one transaction; even so,
// the unique index on email is the real guarantee, and a conflict surfaced by
// storage is converted by the repository into the same domain error as a
// pre-check hit, so a racing loser observes an identical failure.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to find user by email")
		}

		hashedPassword, hashErr := srv.hasher.Hash(input.Password)
		if hashErr != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", hashErr))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, hashErr.Error())
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies an email/password pair and issues a bearer token.
//
// An unknown email and a wrong password produce the same error kind and
// message, so the caller cannot tell which check failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt comparison is CPU-bound and runs outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSignFailed, err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken}, nil
}

// BiometricLogin issues a bearer token for the account holding the given
// biometric key. No password check is involved.
func (srv *authService) BiometricLogin(ctx context.Context, input *usecase.BiometricLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting biometric login")

	user, err := srv.userRepo.FindByBiometricKey(ctx, input.BiometricKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Biometric login failed")

			return nil, errors.Wrap(domainerrors.ErrInvalidBiometricKey, "biometric login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by biometric key")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSignFailed, err.Error())
	}

	srv.log(ctx).Debug("Biometric login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken}, nil
}

// SetBiometricKey binds a biometric key to the account identified by UserID.
// The key must not be held by any account, the caller's own included; binding
// happens once, re-binding to a different value is not exposed.
func (srv *authService) SetBiometricKey(ctx context.Context, input *usecase.SetBiometricKeyInput) (*usecase.SetBiometricKeyOutput, error) {
	srv.log(ctx).Info("Binding biometric key", slog.Int64("userID", input.UserID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByBiometricKey(ctx, input.BiometricKey)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrBiometricKeyInUse, "biometric key binding failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to find user by biometric key")
		}

		user, updateErr := userRepo.UpdateBiometricKey(ctx, input.UserID, input.BiometricKey)
		if updateErr != nil {
			if errors.Is(updateErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "biometric key binding failed")
			}

			return errors.Wrap(updateErr, "failed to update biometric key")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Biometric key binding failed", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Biometric key bound", slog.Int64("userID", input.UserID))

	return &usecase.SetBiometricKeyOutput{User: updatedUser}, nil
}
