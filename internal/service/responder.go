package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rescuesim/responder-service/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=responder.go -destination=mocks/responder_mocks.go -package=mocks

// ResponderRepository defines the contract for the responder record
// store. ConditionalUpdate must be atomic with respect to the version
// check: it writes the full merged state only if the row still carries
// expectedVersion, bumping the version in the same statement.
type ResponderRepository interface {
	Create(ctx context.Context, responder *models.Responder) error
	FindByID(ctx context.Context, id int64) (*models.Responder, error)
	FindByName(ctx context.Context, name string) (*models.Responder, error)
	ConditionalUpdate(ctx context.Context, responder *models.Responder, expectedVersion int64) error
	AllResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error)
	AvailableResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error)
	PersonResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error)
	NonPersonResponderIDs(ctx context.Context) ([]int64, error)
	ActiveResponderCount(ctx context.Context) (int64, error)
	EnrolledResponderCount(ctx context.Context) (int64, error)
	Reset(ctx context.Context) error
	Clear(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}

// EventPublisher defines the outbound event contract. All methods are
// fire-and-forget: they enqueue without blocking and never fail the
// caller on downstream delivery.
type EventPublisher interface {
	ResponderCreated(ctx context.Context, id int64)
	RespondersCreated(ctx context.Context, ids []int64)
	RespondersDeleted(ctx context.Context, ids []int64)
	ResponderUpdated(ctx context.Context, result *UpdateResult, headers map[string]string)
}

// UpdateResult is the structured outcome of an update attempt.
// Success is false for not-found, no-op and lost-race outcomes; those
// are rejections, not errors, and carry a descriptive Message plus the
// most relevant record (current state for no-op and guard rejections,
// the attempted state for a lost race, nil for not-found).
type UpdateResult struct {
	Success   bool
	Message   string
	Responder *models.Responder
}

// ResponderService defines the business logic for responder state.
type ResponderService interface {
	GetResponderStats(ctx context.Context) (*models.ResponderStats, error)
	GetResponder(ctx context.Context, id int64) (*models.Responder, error)
	GetResponderByName(ctx context.Context, name string) (*models.Responder, error)
	AllResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error)
	AvailableResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error)
	PersonResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error)
	CreateResponder(ctx context.Context, responder *models.Responder) error
	CreateResponders(ctx context.Context, responders []*models.Responder) error
	UpdateResponder(ctx context.Context, patch *models.Responder) (*UpdateResult, error)
	UpdateResponderLocation(ctx context.Context, patch *models.Responder) (*UpdateResult, error)
	Reset(ctx context.Context) error
	Clear(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}

type responderService struct {
	repo      ResponderRepository
	logger    *logrus.Logger
	publisher EventPublisher
}

func NewResponderService(repo ResponderRepository, logger *logrus.Logger, publisher EventPublisher) ResponderService {
	return &responderService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// GetResponderStats returns pool-wide enrollment and activity counts.
func (s *responderService) GetResponderStats(ctx context.Context) (*models.ResponderStats, error) {
	active, err := s.repo.ActiveResponderCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count active responders: %w", err)
	}
	enrolled, err := s.repo.EnrolledResponderCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count enrolled responders: %w", err)
	}
	return &models.ResponderStats{Active: active, Enrolled: enrolled}, nil
}

// GetResponder returns a responder by id, or nil when no such record
// exists.
func (s *responderService) GetResponder(ctx context.Context, id int64) (*models.Responder, error) {
	responder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get responder: %w", err)
	}
	return responder, nil
}

// GetResponderByName returns a responder by exact name, nil when
// missing. A name shared by several records propagates
// ErrMultipleMatches.
func (s *responderService) GetResponderByName(ctx context.Context, name string) (*models.Responder, error) {
	responder, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: could not get responder by name: %w", err)
	}
	return responder, nil
}

func (s *responderService) AllResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error) {
	responders, err := s.repo.AllResponders(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}
	return responders, nil
}

func (s *responderService) AvailableResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error) {
	responders, err := s.repo.AvailableResponders(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service: could not list available responders: %w", err)
	}
	return responders, nil
}

func (s *responderService) PersonResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error) {
	responders, err := s.repo.PersonResponders(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service: could not list person responders: %w", err)
	}
	return responders, nil
}

// CreateResponder stores a new responder and publishes a creation
// event keyed by the assigned id.
func (s *responderService) CreateResponder(ctx context.Context, responder *models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "CreateResponder",
	})

	if err := s.repo.Create(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to create responder in repository")
		return fmt.Errorf("service: could not create responder: %w", err)
	}

	log.WithField("responder_id", responder.ID).Info("Responder created")
	s.publisher.ResponderCreated(ctx, responder.ID)
	return nil
}

// CreateResponders stores a batch of responders and publishes a single
// creation event carrying all assigned ids.
func (s *responderService) CreateResponders(ctx context.Context, responders []*models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "CreateResponders",
		"count":   len(responders),
	})

	ids := make([]int64, 0, len(responders))
	for _, responder := range responders {
		if err := s.repo.Create(ctx, responder); err != nil {
			log.WithError(err).Error("Failed to create responder in repository")
			return fmt.Errorf("service: could not create responders: %w", err)
		}
		ids = append(ids, responder.ID)
	}

	log.Info("Responders created")
	s.publisher.RespondersCreated(ctx, ids)
	return nil
}

// UpdateResponder merges a partial update into the stored record under
// optimistic concurrency control. Rejections (not found, no state
// change, lost race) come back as a failed UpdateResult; only
// infrastructure failures return a non-nil error. There is no retry:
// a losing writer is dropped, re-submission is up to the sender.
func (s *responderService) UpdateResponder(ctx context.Context, patch *models.Responder) (*UpdateResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "UpdateResponder",
		"responder_id": patch.ID,
	})

	current, err := s.repo.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not read responder %d: %w", patch.ID, err)
	}
	if current == nil {
		log.Warn("Responder not found in the database")
		return &UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Responder with id %d not found.", patch.ID),
		}, nil
	}

	next, changed := merge(current, patch)
	if !changed {
		log.Debug("Responder state not changed, skipping write")
		return &UpdateResult{
			Success:   false,
			Message:   "Responder state not changed",
			Responder: current,
		}, nil
	}

	if err := s.repo.ConditionalUpdate(ctx, next, current.Version); err != nil {
		switch {
		case errors.Is(err, ErrVersionConflict):
			log.WithField("version", current.Version).Warn("Lost optimistic concurrency race, update dropped")
			return &UpdateResult{
				Success:   false,
				Message:   fmt.Sprintf("Concurrent modification of responder %d: %v", patch.ID, err),
				Responder: next,
			}, nil
		case errors.Is(err, ErrResponderNotFound):
			log.Warn("Responder deleted while update was in flight")
			return &UpdateResult{
				Success: false,
				Message: fmt.Sprintf("Responder with id %d not found.", patch.ID),
			}, nil
		default:
			return nil, fmt.Errorf("service: could not update responder %d: %w", patch.ID, err)
		}
	}

	log.Info("Responder updated")
	return &UpdateResult{
		Success:   true,
		Message:   "Responder updated",
		Responder: next,
	}, nil
}

// UpdateResponderLocation applies a location ping through the same
// update path, but only for responders currently on a mission.
// Position telemetry for an available responder would linger as a
// stale "current position" once the responder is reassigned, so it is
// rejected outright. The pre-read here is advisory; the authoritative
// concurrency gate remains the version-conditional write.
func (s *responderService) UpdateResponderLocation(ctx context.Context, patch *models.Responder) (*UpdateResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "UpdateResponderLocation",
		"responder_id": patch.ID,
	})

	current, err := s.repo.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not read responder %d: %w", patch.ID, err)
	}
	if current == nil {
		log.Warn("Responder not found in the database")
		return &UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Responder with id %d not found.", patch.ID),
		}, nil
	}
	if isTrue(current.Available) {
		log.Warn("Responder is available. Ignoring location update")
		return &UpdateResult{
			Success:   false,
			Message:   fmt.Sprintf("Responder with id %d is available.", patch.ID),
			Responder: current,
		}, nil
	}

	return s.UpdateResponder(ctx, patch)
}

// Reset returns the whole pool to its initial state: everyone
// available and unenrolled, person responders stripped of coordinates.
func (s *responderService) Reset(ctx context.Context) error {
	s.logger.WithField("service", "responder").Info("Reset called")
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("service: could not reset responders: %w", err)
	}
	return nil
}

// Clear deletes simulated (non-person) responders, publishing a
// deletion event with their ids, and resets person responders.
func (s *responderService) Clear(ctx context.Context) error {
	s.logger.WithField("service", "responder").Info("Clear called")

	ids, err := s.repo.NonPersonResponderIDs(ctx)
	if err != nil {
		return fmt.Errorf("service: could not list non-person responders: %w", err)
	}
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("service: could not clear responders: %w", err)
	}

	s.publisher.RespondersDeleted(ctx, ids)
	return nil
}

// DeleteAll removes every responder without publishing events. Used by
// administrative teardown between simulation runs.
func (s *responderService) DeleteAll(ctx context.Context) error {
	s.logger.WithField("service", "responder").Info("Delete All called")
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("service: could not delete responders: %w", err)
	}
	return nil
}
