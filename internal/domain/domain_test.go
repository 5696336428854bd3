package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateEventInput_Validate(t *testing.T) {
	valid := CreateEventInput{
		Title:        "Show",
		Description:  "desc",
		CategoryID:   1,
		City:         "Rio de Janeiro",
		Street:       "Rua A",
		Number:       "1",
		Venue:        "Arena",
		StartDate:    time.Now().Add(time.Hour),
		TotalTickets: 100,
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(in *CreateEventInput)
	}{
		{"missing title", func(in *CreateEventInput) { in.Title = "" }},
		{"missing description", func(in *CreateEventInput) { in.Description = "" }},
		{"missing category", func(in *CreateEventInput) { in.CategoryID = 0 }},
		{"missing city", func(in *CreateEventInput) { in.City = "" }},
		{"missing venue", func(in *CreateEventInput) { in.Venue = "" }},
		{"zero start date", func(in *CreateEventInput) { in.StartDate = time.Time{} }},
		{"zero tickets", func(in *CreateEventInput) { in.TotalTickets = 0 }},
		{"bad media type", func(in *CreateEventInput) { in.MediaType = "audio" }},
		{"end before start", func(in *CreateEventInput) {
			end := in.StartDate.Add(-time.Hour)
			in.EndDate = &end
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			assert.ErrorIs(t, in.Validate(), ErrValidation)
		})
	}
}

func TestCreateTicketBatchInput_Validate(t *testing.T) {
	valid := CreateTicketBatchInput{
		EventID:    1,
		CategoryID: 1,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("49.90"),
		Quantity:   100,
	}
	assert.NoError(t, valid.Validate())

	free := valid
	free.Price = decimal.Zero
	assert.NoError(t, free.Validate(), "free tickets are allowed")

	negative := valid
	negative.Price = decimal.RequireFromString("-0.01")
	assert.ErrorIs(t, negative.Validate(), ErrValidation)

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.ErrorIs(t, zeroQty.Validate(), ErrValidation)

	start := time.Now()
	end := start.Add(-time.Minute)
	badWindow := valid
	badWindow.StartDate = &start
	badWindow.EndDate = &end
	assert.ErrorIs(t, badWindow.Validate(), ErrValidation)
}

func TestEvent_Location(t *testing.T) {
	e := &Event{
		Venue:  "Cidade do Rock",
		Street: "Av. Salvador Allende",
		Number: "400",
		City:   "Rio de Janeiro",
	}

	assert.Equal(t, "Cidade do Rock, Av. Salvador Allende, 400, Rio de Janeiro", e.Location())
}

func TestInsufficientInventoryError(t *testing.T) {
	err := &InsufficientInventoryError{Available: 3}

	assert.Equal(t, "insufficient inventory: 3 available", err.Error())
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	var target *InsufficientInventoryError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, 3, target.Available)
}
