package auth

import (
	"context"

	autherrors "github.com/Sumedhatongle/employee-management-system/internal/auth/errors"
	"github.com/Sumedhatongle/employee-management-system/internal/identity"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
	"github.com/Sumedhatongle/employee-management-system/internal/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login verifies the credentials against the stored bcrypt hash and, on
	// success, issues a signed session token.
	Login(ctx context.Context, username, password string) (LoginResult, identity.Identity, error)
	// Me re-reads the account row, so a deactivated user is rejected even
	// while holding a token that has not yet expired.
	Me(ctx context.Context, userID uuid.UUID) (AuthResponse, error)
}

type service struct {
	repo   Repository
	tokens token.Service
	logger *zap.Logger
}

func NewService(repo Repository, tokens token.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResult, identity.Identity, error) {
	user, err := s.repo.GetActiveByUsername(ctx, username)
	if err != nil {
		// Unknown and inactive users fail the same way as a bad password.
		s.logger.Debug("login lookup failed", zap.String("username", username))
		return LoginResult{}, identity.Identity{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("login password mismatch", zap.String("username", username))
		return LoginResult{}, identity.Identity{}, autherrors.ErrInvalidCredentials
	}

	id, err := user.Identity()
	if err != nil {
		s.logger.Error("login stored role unparseable",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return LoginResult{}, identity.Identity{}, err
	}

	raw, expiresAt, err := s.tokens.Issue(id)
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return LoginResult{}, identity.Identity{}, err
	}

	s.logger.Info("login success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return LoginResult{
		Token:     raw,
		ExpiresAt: expiresAt,
		User:      mapToAuthResponse(id),
	}, id, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (AuthResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Debug("me lookup failed", zap.String("user_id", userID.String()))
		return AuthResponse{}, apperror.ErrUnauthorized
	}

	if !user.IsActive {
		s.logger.Info("me rejected for deactivated account", zap.String("user_id", userID.String()))
		return AuthResponse{}, apperror.ErrUnauthorized
	}

	id, err := user.Identity()
	if err != nil {
		s.logger.Error("stored role unparseable",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return AuthResponse{}, err
	}

	return mapToAuthResponse(id), nil
}

func mapToAuthResponse(id identity.Identity) AuthResponse {
	resp := AuthResponse{
		ID:       id.UserID.String(),
		Username: id.Username,
		Role:     string(id.Role),
	}
	if employeeID, ok := id.Employee.ID(); ok {
		v := employeeID.String()
		resp.EmployeeID = &v
	}
	return resp
}
