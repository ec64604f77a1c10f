package services

import (
	"errors"
	"fmt"
	"sync"

	"hotel-booking-predictor/models"
)

var ErrUnknownField = errors.New("unknown booking field")

// BookingForm holds the draft until submission. Values are stored exactly
// as typed; nothing is validated here.
type BookingForm struct {
	mu    sync.RWMutex
	draft models.BookingDraft
}

// NewBookingForm creates a form with the default values
func NewBookingForm() *BookingForm {
	return &BookingForm{draft: models.DefaultBookingDraft()}
}

// Update replaces one field and leaves the rest alone
func (f *BookingForm) Update(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	field := f.draft.Field(name)
	if field == nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	*field = value
	return nil
}

// Draft returns a copy of the current values
func (f *BookingForm) Draft() models.BookingDraft {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.draft
}
