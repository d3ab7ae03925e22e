package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped on every token and required when validating one.
const Issuer = "facilities"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrInvalidClaims   = errors.New("token does not name a valid user")
	ErrEmptySecretKey  = errors.New("secret key cannot be empty")
	ErrWeakSecretKey   = errors.New("secret key must be at least 32 characters")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Claims identify the user a token was issued to. The account type is
// decoded by name, so a token carrying an unknown type does not parse.
type Claims struct {
	UserID      uint                 `json:"user_id"`
	Email       string               `json:"email"`
	AccountType database.AccountType `json:"account_type"`
	jwt.RegisteredClaims
}

// Service issues and checks HS256 bearer tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg config.JWTConfig) (*Service, error) {
	switch {
	case cfg.SecretKey == "":
		return nil, ErrEmptySecretKey
	case len(cfg.SecretKey) < 32:
		return nil, ErrWeakSecretKey
	case cfg.Duration <= 0:
		return nil, ErrInvalidDuration
	}
	return &Service{secret: []byte(cfg.SecretKey), ttl: cfg.Duration, now: time.Now}, nil
}

// GenerateToken signs a token for user.
func (s *Service) GenerateToken(user *database.User) (string, error) {
	if user == nil || user.ID == 0 || !user.AccountType.Valid() {
		return "", ErrInvalidClaims
	}
	now := s.now()
	claims := &Claims{
		UserID:      user.ID,
		Email:       user.Email,
		AccountType: user.AccountType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken checks the signature, issuer and lifetime of token and
// that its subject matches the user id it carries.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	if claims.UserID == 0 || claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) || !claims.AccountType.Valid() {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
