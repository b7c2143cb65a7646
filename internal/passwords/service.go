package passwords

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Service struct {
	records *Repository

	now    func() time.Time
	logger *zap.Logger
}

func NewService(records *Repository, logger *zap.Logger) *Service {
	return &Service{
		records: records,

		now:    time.Now,
		logger: logger,
	}
}

// List returns the whole collection in stored order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	s.logger.Debug("listing password records")

	records, err := s.records.Load(ctx)
	if err != nil {
		s.logger.Error("failed to list password records", zap.Error(err))
		return nil, err
	}

	return records, nil
}

// Get returns the first record for email.
func (s *Service) Get(ctx context.Context, email string) (*Record, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}

	index := s.locate(records, email)
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
	}

	return &records[index], nil
}

// Approve marks the first record for email as approved by approvedBy.
func (s *Service) Approve(ctx context.Context, email, approvedBy string) error {
	logger := s.logger.With(zap.String("email", email), zap.String("approved_by", approvedBy))

	err := s.mutate(ctx, actionApprove, email, approvedBy, func(records []Record) ([]Record, error) {
		index := s.locate(records, email)
		if index < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
		}

		records[index].approve(approvedBy, s.now())
		return records, nil
	})
	if err != nil {
		logger.Error("failed to approve password", zap.Error(err))
		return err
	}

	logger.Info("password approved")
	return nil
}

// Reject removes every record for email.
func (s *Service) Reject(ctx context.Context, email, rejectedBy string) error {
	logger := s.logger.With(zap.String("email", email), zap.String("rejected_by", rejectedBy))

	err := s.mutate(ctx, actionReject, email, rejectedBy, func(records []Record) ([]Record, error) {
		kept := lo.Reject(records, func(r Record, _ int) bool { return r.Email == email })
		if len(kept) == len(records) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
		}
		if removed := len(records) - len(kept); removed > 1 {
			logger.Warn("duplicate password records, removing all", zap.Int("count", removed))
		}

		return kept, nil
	})
	if err != nil {
		logger.Error("failed to reject password", zap.Error(err))
		return err
	}

	logger.Info("password rejected")
	return nil
}

// Revoke clears the approval of the first record for email. Revoking an
// unapproved record succeeds and leaves it as is.
func (s *Service) Revoke(ctx context.Context, email, revokedBy string) error {
	logger := s.logger.With(zap.String("email", email), zap.String("revoked_by", revokedBy))

	err := s.mutate(ctx, actionRevoke, email, revokedBy, func(records []Record) ([]Record, error) {
		index := s.locate(records, email)
		if index < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
		}

		records[index].revoke()
		return records, nil
	})
	if err != nil {
		logger.Error("failed to revoke password", zap.Error(err))
		return err
	}

	logger.Info("password approval revoked")
	return nil
}

// mutate runs one load-transform-save cycle over the collection. It is not
// isolated from concurrent callers: the last save wins.
func (s *Service) mutate(
	ctx context.Context,
	action, email, actor string,
	transform func([]Record) ([]Record, error),
) error {
	if email == "" || actor == "" {
		transitionsTotal.WithLabelValues(action, resultError).Inc()
		return fmt.Errorf("%w: email and actor are required", ErrValidation)
	}

	records, err := s.records.Load(ctx)
	if err != nil {
		transitionsTotal.WithLabelValues(action, resultError).Inc()
		return err
	}

	updated, err := transform(records)
	if err != nil {
		result := resultError
		if errors.Is(err, ErrNotFound) {
			result = resultNotFound
		}
		transitionsTotal.WithLabelValues(action, result).Inc()
		return err
	}

	if saveErr := s.records.Save(ctx, updated); saveErr != nil {
		transitionsTotal.WithLabelValues(action, resultError).Inc()
		return saveErr
	}

	transitionsTotal.WithLabelValues(action, resultSuccess).Inc()
	return nil
}

// locate returns the index of the first record for email or -1.
func (s *Service) locate(records []Record, email string) int {
	matches := lo.CountBy(records, func(r Record) bool { return r.Email == email })
	if matches > 1 {
		s.logger.Warn("duplicate password records, acting on the first", zap.String("email", email), zap.Int("count", matches))
	}

	_, index, _ := lo.FindIndexOf(records, func(r Record) bool { return r.Email == email })
	return index
}
