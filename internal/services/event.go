package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventbooking/internal/domain"
	"eventbooking/internal/validation"
)

const defaultContextTimeout = 10 * time.Second

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Create(ctx, event, validation.EventPreCommit); err != nil {
		if domain.IsValidationError(err) {
			return err
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// UpdateEvent applies patch to the stored event and writes it through the same
// validation as CreateEvent. The slug only changes when the title does.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, patch *domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	candidate := patch.Apply(current)
	if err := s.eventRepo.Update(ctx, candidate, validation.EventPreCommit); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if domain.IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return candidate, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}
