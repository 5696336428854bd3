package service

import (
	"context"
	"fmt"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
)

type EventService struct {
	repo      ports.EventRepo
	reference ports.ReferenceRepo
}

func NewEventService(repo ports.EventRepo, reference ports.ReferenceRepo) *EventService {
	return &EventService{
		repo:      repo,
		reference: reference,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput, sellerID int64) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.reference.GetCategory(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	event := &domain.Event{
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		MediaType:    input.MediaType,
		CategoryID:   input.CategoryID,
		City:         input.City,
		Street:       input.Street,
		Number:       input.Number,
		Venue:        input.Venue,
		Complement:   input.Complement,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		SellerID:     sellerID,
		TotalTickets: input.TotalTickets,
	}
	if event.MediaType == "" {
		event.MediaType = domain.MediaTypeImage
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *EventService) ListByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	return s.repo.ListByCity(ctx, city)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
