package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports/mocks"
)

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:        "Rock in Rio",
		Description:  "Festival de música",
		CategoryID:   1,
		City:         "Rio de Janeiro",
		Street:       "Av. Salvador Allende",
		Number:       "400",
		Venue:        "Cidade do Rock",
		StartDate:    time.Now().Add(72 * time.Hour),
		TotalTickets: 1000,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reference := mocks.NewMockReferenceRepo(t)

	svc := NewEventService(repo, reference)

	reference.EXPECT().GetCategory(mock.Anything, int64(1)).Return(&domain.Category{ID: 1, Name: "Música"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, e *domain.Event) {
		e.ID = 1
	}).Return(nil)

	event, err := svc.Create(context.Background(), validEventInput(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, int64(7), event.SellerID)
	assert.Equal(t, domain.MediaTypeImage, event.MediaType)
}

func TestEventService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reference := mocks.NewMockReferenceRepo(t)

	svc := NewEventService(repo, reference)

	input := validEventInput()
	input.Title = ""

	_, err := svc.Create(context.Background(), input, 7)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reference := mocks.NewMockReferenceRepo(t)

	svc := NewEventService(repo, reference)

	reference.EXPECT().GetCategory(mock.Anything, int64(1)).Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), validEventInput(), 7)

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestEventService_GetByID(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reference := mocks.NewMockReferenceRepo(t)

	svc := NewEventService(repo, reference)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ListFilters(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reference := mocks.NewMockReferenceRepo(t)

	svc := NewEventService(repo, reference)

	events := []*domain.Event{{ID: 1}, {ID: 2}}
	repo.EXPECT().ListByCategory(mock.Anything, int64(3)).Return(events, nil)
	repo.EXPECT().ListByCity(mock.Anything, "São Paulo").Return(events[:1], nil)

	byCategory, err := svc.ListByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byCity, err := svc.ListByCity(context.Background(), "São Paulo")
	require.NoError(t, err)
	assert.Len(t, byCity, 1)
}
