package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/indexadmin/indexadmin/internal/passwords"
	"github.com/indexadmin/indexadmin/internal/users"
	"go.uber.org/zap"
)

type Service struct {
	config Config

	usersSvc     *users.Service
	passwordsSvc *passwords.Service

	logger *zap.Logger
}

func NewService(
	config Config,
	usersSvc *users.Service,
	passwordsSvc *passwords.Service,
	logger *zap.Logger,
) *Service {
	return &Service{
		config: config,

		usersSvc:     usersSvc,
		passwordsSvc: passwordsSvc,

		logger: logger,
	}
}

// Issue signs an access token for identity.
func (s *Service) Issue(identity Identity) (string, error) {
	claims := NewClaims(identity, s.config.Issuer, time.Now().Add(s.config.TokenTTL))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify decodes tokenString and returns its identity. Expired tokens yield
// ErrTokenExpired, every other defect ErrTokenInvalid.
func (s *Service) Verify(tokenString string) (*Identity, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if s.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.config.Issuer))
	}

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.config.SecretKey, nil
	}, options...)

	if errors.Is(err, jwt.ErrTokenExpired) {
		verificationsTotal.WithLabelValues(resultExpired).Inc()
		return nil, ErrTokenExpired
	}
	if err != nil || !token.Valid {
		s.logger.Debug("token rejected", zap.Error(err))
		verificationsTotal.WithLabelValues(resultInvalid).Inc()
		return nil, ErrTokenInvalid
	}

	verificationsTotal.WithLabelValues(resultValid).Inc()

	identity := claims.identity()
	return &identity, nil
}

// Login exchanges an email and its approved generated password for a token.
func (s *Service) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	logger := s.logger.With(zap.String("email", email))

	user, err := s.usersSvc.GetByEmail(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		logger.Info("login rejected: unknown user")
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	record, err := s.passwordsSvc.Get(ctx, user.Email)
	if errors.Is(err, passwords.ErrNotFound) {
		logger.Info("login rejected: no generated password")
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get password record: %w", err)
	}

	if !record.IsApproved() {
		logger.Info("login rejected: password not approved")
		return nil, "", ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(record.PlainPassword), []byte(password)) != 1 {
		logger.Info("login rejected: password mismatch")
		return nil, "", ErrInvalidCredentials
	}

	identity := Identity{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}

	token, err := s.Issue(identity)
	if err != nil {
		return nil, "", err
	}

	logger.Info("user logged in")
	return &identity, token, nil
}
