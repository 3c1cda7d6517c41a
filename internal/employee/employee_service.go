package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/Sumedhatongle/employee-management-system/internal/auth"
	employeeerrors "github.com/Sumedhatongle/employee-management-system/internal/employee/errors"
)

const (
	dateLayout      = "2006-01-02"
	profileCacheTTL = 5 * time.Minute

	SourceView  = "view"
	SourceJoin  = "join"
	SourceCache = "cache"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Profile(ctx context.Context, employeeID uuid.UUID) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	joinedOn, err := time.ParseInLocation(dateLayout, req.JoinedOn, time.UTC)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	emp := &Employee{
		ID:         uuid.New(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
		JoinedOn:   joinedOn,
	}
	user := &auth.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.repo.CreateWithUser(ctx, user, emp); err != nil {
		if !errors.Is(err, employeeerrors.ErrConflict) {
			s.logger.Error("failed to create employee",
				zap.String("username", req.Username),
				zap.Error(err))
		}
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	return EmployeeResponse{
		ID:         emp.ID,
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Department: emp.Department,
		Position:   emp.Position,
		JoinedOn:   emp.JoinedOn.Format(dateLayout),
	}, nil
}

// Profile reads through the cache, then the profile view, then a plain
// join when the view is missing. Which tier answered is reported in the
// response instead of being swallowed.
func (s *service) Profile(ctx context.Context, employeeID uuid.UUID) (ProfileResponse, error) {
	cacheKey := fmt.Sprintf("employee:profile:%s", employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ProfileResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				resp.Source = SourceCache
				return resp, nil
			}
		}
	}

	// Collapse concurrent misses for the same employee into one read.
	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		resp, err := s.loadProfile(ctx, employeeID)
		if err != nil {
			return ProfileResponse{}, err
		}

		if s.rdb != nil {
			if body, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, string(body), profileCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ProfileResponse{}, err
	}
	return v.(ProfileResponse), nil
}

func (s *service) loadProfile(ctx context.Context, employeeID uuid.UUID) (ProfileResponse, error) {
	profile, err := s.repo.FindProfileByView(ctx, employeeID)
	source := SourceView
	if err != nil && !errors.Is(err, employeeerrors.ErrNotFound) {
		s.logger.Warn("profile view read failed, falling back to join",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))

		profile, err = s.repo.FindProfileByJoin(ctx, employeeID)
		source = SourceJoin
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		EmployeeID: profile.EmployeeID,
		Username:   profile.Username,
		Email:      profile.Email,
		Role:       profile.Role,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Department: profile.Department,
		Position:   profile.Position,
		JoinedOn:   profile.JoinedOn,
		Source:     source,
	}, nil
}
