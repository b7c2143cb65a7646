package users

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	users *Repository

	logger *zap.Logger
}

func NewService(users *Repository, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Count returns the number of users in the collection.
func (s *Service) Count(ctx context.Context) (int, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to count users", zap.Error(err))
		return 0, err
	}

	return len(users), nil
}

// GetByEmail looks up a single user.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	s.logger.Debug("getting user", zap.String("email", email))

	return s.users.GetByEmail(ctx, email)
}
