package domain

import (
	"fmt"
	"time"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Event struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	MediaType    string     `json:"media_type"`
	CategoryID   int64      `json:"category_id"`
	City         string     `json:"city"`
	Street       string     `json:"street"`
	Number       string     `json:"number"`
	Venue        string     `json:"venue"`
	Complement   *string    `json:"complement,omitempty"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	SellerID     int64      `json:"seller_id"`
	TotalTickets int        `json:"total_tickets"`
}

// Location renders the address the way it appears on tickets and in
// confirmation emails.
func (e *Event) Location() string {
	return fmt.Sprintf("%s, %s, %s, %s", e.Venue, e.Street, e.Number, e.City)
}

type CreateEventInput struct {
	Title        string
	Description  string
	Image        string
	MediaType    string
	CategoryID   int64
	City         string
	Street       string
	Number       string
	Venue        string
	Complement   *string
	StartDate    time.Time
	EndDate      *time.Time
	TotalTickets int
}

// Validate enforces the construction-time field constraints. It is pure
// and does not consult the store.
func (in *CreateEventInput) Validate() error {
	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case in.CategoryID <= 0:
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	case in.City == "":
		return fmt.Errorf("%w: city is required", ErrValidation)
	case in.Street == "":
		return fmt.Errorf("%w: street is required", ErrValidation)
	case in.Number == "":
		return fmt.Errorf("%w: number is required", ErrValidation)
	case in.Venue == "":
		return fmt.Errorf("%w: venue is required", ErrValidation)
	case in.StartDate.IsZero():
		return fmt.Errorf("%w: start_date is required", ErrValidation)
	case in.TotalTickets <= 0:
		return fmt.Errorf("%w: total_tickets must be positive", ErrValidation)
	}
	if in.MediaType != "" && in.MediaType != MediaTypeImage && in.MediaType != MediaTypeVideo {
		return fmt.Errorf("%w: media_type must be %q or %q", ErrValidation, MediaTypeImage, MediaTypeVideo)
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}
	return nil
}
