package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"hotel-booking-predictor/models"
)

// ErrorMarker replaces the result when a prediction call fails
const ErrorMarker = "⚠️ Error calling API"

var ErrBusy = errors.New("a prediction is already in progress")

// BookingView is the state behind one booking page: the draft, the last
// prediction result and the busy flag.
type BookingView struct {
	*BookingForm

	predictor Predictor

	mu     sync.Mutex
	result string
	busy   bool
}

// NewBookingView creates a view with a default draft and no result
func NewBookingView(predictor Predictor) *BookingView {
	return &BookingView{
		BookingForm: NewBookingForm(),
		predictor:   predictor,
	}
}

// Submit sends the current draft for prediction and stores the outcome.
// At most one call is in flight per view; a second Submit while busy
// returns ErrBusy without touching any state.
func (v *BookingView) Submit(ctx context.Context) error {
	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return ErrBusy
	}
	v.busy = true
	v.result = ""
	v.mu.Unlock()

	result := ErrorMarker
	defer func() {
		v.mu.Lock()
		v.result = result
		v.busy = false
		v.mu.Unlock()
	}()

	req := v.Draft().ToRequest()
	prediction, err := v.predictor.Predict(ctx, req)
	if err != nil {
		log.Printf("Error making prediction: %v", err)
		return nil
	}

	log.Printf("Prediction received: %s", prediction)
	result = prediction
	return nil
}

// Busy reports whether a submission is in flight
func (v *BookingView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

// State returns a snapshot of the view
func (v *BookingView) State() models.ViewState {
	v.mu.Lock()
	result, busy := v.result, v.busy
	v.mu.Unlock()

	return models.ViewState{
		Draft:  v.Draft(),
		Result: result,
		Busy:   busy,
	}
}
