package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aidar/mergington-activities/internal/domain"
	"github.com/aidar/mergington-activities/internal/observability"
	"github.com/aidar/mergington-activities/internal/repository"
)

// ActivityService handles signup and unregister logic for activities
type ActivityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository, logger *slog.Logger) *ActivityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListActivities returns every activity with its current roster
func (s *ActivityService) ListActivities(ctx context.Context) (*domain.Catalog, error) {
	return s.activityRepo.List(ctx)
}

// SignUp adds email to the activity roster and returns the confirmation message
func (s *ActivityService) SignUp(ctx context.Context, activityName, email string) (string, error) {
	size, err := s.activityRepo.AddParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordSignup(outcomeFor(err))
		return "", fmt.Errorf("sign up %q: %w", activityName, err)
	}

	observability.RecordSignup(observability.OutcomeSuccess)
	observability.RecordRosterSize(activityName, size)
	s.logger.Info("Participant signed up", "activity", activityName, "email", email)

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity roster and returns the confirmation message
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	size, err := s.activityRepo.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordUnregister(outcomeFor(err))
		return "", fmt.Errorf("unregister from %q: %w", activityName, err)
	}

	observability.RecordUnregister(observability.OutcomeSuccess)
	observability.RecordRosterSize(activityName, size)
	s.logger.Info("Participant unregistered", "activity", activityName, "email", email)

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// Reset restores the seeded activity set
func (s *ActivityService) Reset(ctx context.Context) error {
	if err := s.activityRepo.Reset(ctx); err != nil {
		return err
	}
	s.RefreshMetrics(ctx)
	return nil
}

// RefreshMetrics publishes roster sizes for all activities
func (s *ActivityService) RefreshMetrics(ctx context.Context) {
	catalog, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh roster metrics", "error", err)
		return
	}
	for _, e := range catalog.Entries() {
		observability.RecordRosterSize(e.Name, len(e.Activity.Participants))
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return observability.OutcomeActivityNotFound
	case errors.Is(err, domain.ErrParticipantNotFound):
		return observability.OutcomeParticipantNotFound
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return observability.OutcomeAlreadySignedUp
	default:
		return observability.OutcomeError
	}
}
