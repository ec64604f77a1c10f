package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking-predictor/models"
)

type stubPredictor struct {
	label string
	err   error
	got   []models.PredictionRequest
}

func (p *stubPredictor) Predict(_ context.Context, req models.PredictionRequest) (string, error) {
	p.got = append(p.got, req)
	return p.label, p.err
}

// blockingPredictor holds every call until release is closed
type blockingPredictor struct {
	started chan struct{}
	release chan struct{}
	label   string
}

func newBlockingPredictor(label string) *blockingPredictor {
	return &blockingPredictor{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		label:   label,
	}
}

func (p *blockingPredictor) Predict(ctx context.Context, _ models.PredictionRequest) (string, error) {
	p.started <- struct{}{}
	select {
	case <-p.release:
		return p.label, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestBookingForm_UpdateLeavesOtherFieldsUnchanged(t *testing.T) {
	for _, name := range models.FieldNames {
		form := NewBookingForm()
		before := form.Draft()

		require.NoError(t, form.Update(name, "edited"))
		after := form.Draft()

		for _, other := range models.FieldNames {
			if other == name {
				assert.Equal(t, "edited", *after.Field(other))
				continue
			}
			assert.Equal(t, *before.Field(other), *after.Field(other), "updating %s changed %s", name, other)
		}
	}
}

func TestBookingForm_AcceptsAnyText(t *testing.T) {
	form := NewBookingForm()
	require.NoError(t, form.Update(models.FieldAdults, "two"))
	assert.Equal(t, "two", form.Draft().NoOfAdults)
}

func TestBookingForm_UnknownField(t *testing.T) {
	form := NewBookingForm()
	err := form.Update("booking_id", "INN00001")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, models.DefaultBookingDraft(), form.Draft())
}

func TestSubmit_StoresPrediction(t *testing.T) {
	predictor := &stubPredictor{label: "Canceled"}
	view := NewBookingView(predictor)
	require.NoError(t, view.Update(models.FieldLeadTime, "224"))

	require.NoError(t, view.Submit(context.Background()))

	state := view.State()
	assert.Equal(t, "Canceled", state.Result)
	assert.False(t, state.Busy)
	require.Len(t, predictor.got, 1)
	assert.Equal(t, models.Numeric{Value: 224, Valid: true}, predictor.got[0].LeadTime)
	assert.Equal(t, "Room_Type_1", predictor.got[0].RoomTypeReserved)

	rendered := RenderResult(state.Result, state.Busy)
	assert.Equal(t, CanceledMessage, rendered.Message)
	assert.Equal(t, ClassDanger, rendered.Class)
}

func TestSubmit_FailureStoresErrorMarker(t *testing.T) {
	view := NewBookingView(&stubPredictor{err: errors.New("connection refused")})

	require.NoError(t, view.Submit(context.Background()))

	state := view.State()
	assert.Equal(t, ErrorMarker, state.Result)
	assert.False(t, state.Busy)

	rendered := RenderResult(state.Result, state.Busy)
	assert.True(t, rendered.Show)
	assert.Equal(t, ClassSuccess, rendered.Class)
}

func TestSubmit_BusyWhileInFlight(t *testing.T) {
	predictor := newBlockingPredictor("Not_Canceled")
	view := NewBookingView(predictor)

	done := make(chan error, 1)
	go func() { done <- view.Submit(context.Background()) }()
	<-predictor.started

	state := view.State()
	assert.True(t, state.Busy)
	assert.Empty(t, state.Result)

	rendered := RenderResult(state.Result, state.Busy)
	assert.True(t, rendered.Waiting)
	assert.True(t, rendered.ButtonDisabled)
	assert.False(t, rendered.Show)

	assert.ErrorIs(t, view.Submit(context.Background()), ErrBusy)

	close(predictor.release)
	require.NoError(t, <-done)

	state = view.State()
	assert.False(t, state.Busy)
	assert.Equal(t, "Not_Canceled", state.Result)

	rendered = RenderResult(state.Result, state.Busy)
	assert.False(t, rendered.Waiting)
	assert.False(t, rendered.ButtonDisabled)
	assert.Equal(t, ConfirmedMessage, rendered.Message)
}

func TestSubmit_ClearsPreviousResult(t *testing.T) {
	predictor := newBlockingPredictor("Not_Canceled")
	view := NewBookingView(&stubPredictor{label: "Canceled"})
	require.NoError(t, view.Submit(context.Background()))
	require.Equal(t, "Canceled", view.State().Result)

	view.predictor = predictor
	done := make(chan error, 1)
	go func() { done <- view.Submit(context.Background()) }()
	<-predictor.started

	assert.Empty(t, view.State().Result)

	close(predictor.release)
	require.NoError(t, <-done)
}

func TestSubmit_CallerCancellationStoresErrorMarker(t *testing.T) {
	predictor := newBlockingPredictor("Canceled")
	view := NewBookingView(predictor)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- view.Submit(ctx) }()
	<-predictor.started
	cancel()

	require.NoError(t, <-done)
	state := view.State()
	assert.False(t, state.Busy)
	assert.Equal(t, ErrorMarker, state.Result)
}
