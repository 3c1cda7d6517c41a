package token

import (
	"errors"
	"time"

	"github.com/Sumedhatongle/employee-management-system/internal/identity"
	tokenerrors "github.com/Sumedhatongle/employee-management-system/internal/token/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultIssuer   = "employee-management"
	defaultAudience = "employee-management"
	defaultTTL      = 60 * time.Minute
)

type Claims struct {
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

type Service interface {
	// Issue signs a token carrying the identity's claims plus a unique
	// token id and an absolute expiry.
	Issue(id identity.Identity) (raw string, expiresAt time.Time, err error)

	// Validate verifies signature, issuer, audience and lifetime (no clock
	// skew allowance) and rebuilds the identity from the claims.
	Validate(raw string) (identity.Identity, time.Time, error)

	TTL() time.Duration
}

type service struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*service)

func WithTTL(ttl time.Duration) Option {
	return func(s *service) { s.ttl = ttl }
}

func WithIssuer(issuer, audience string) Option {
	return func(s *service) {
		s.issuer = issuer
		s.audience = audience
	}
}

// WithClock overrides the time source. Used by tests; production code keeps
// the default.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService builds a token service around an explicit signing key. The key
// is owned by the caller; there is no process-wide secret.
func NewService(signingKey []byte, opts ...Option) Service {
	s := &service{
		key:      signingKey,
		issuer:   defaultIssuer,
		audience: defaultAudience,
		ttl:      defaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) TTL() time.Duration {
	return s.ttl
}

func (s *service) Issue(id identity.Identity) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Username: id.Username,
		Role:     string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if employeeID, ok := id.Employee.ID(); ok {
		v := employeeID.String()
		claims.EmployeeID = &v
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, expiresAt, nil
}

func (s *service) Validate(raw string) (identity.Identity, time.Time, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return identity.Identity{}, time.Time{}, mapParseError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return identity.Identity{}, time.Time{}, tokenerrors.ErrInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return identity.Identity{}, time.Time{}, tokenerrors.ErrInvalid
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return identity.Identity{}, time.Time{}, tokenerrors.ErrInvalid
	}

	link := identity.NoEmployee()
	if claims.EmployeeID != nil {
		employeeID, err := uuid.Parse(*claims.EmployeeID)
		if err != nil {
			return identity.Identity{}, time.Time{}, tokenerrors.ErrInvalid
		}
		link = identity.LinkedEmployee(employeeID)
	}

	id := identity.Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
		Employee: link,
	}
	return id, claims.ExpiresAt.Time, nil
}

// mapParseError keeps the failure reason distinguishable. Expiry is checked
// before signature by the parser, so an expired token reports Expired even
// if it was also tampered with.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return tokenerrors.ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return tokenerrors.ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return tokenerrors.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return tokenerrors.ErrWrongAudience
	default:
		return tokenerrors.ErrInvalid
	}
}
