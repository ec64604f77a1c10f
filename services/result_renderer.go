package services

import "hotel-booking-predictor/models"

const (
	CanceledLabel = "Canceled"

	CanceledMessage  = "⚠️ High risk of cancellation. Hotel requires 30% advance payment."
	ConfirmedMessage = "✅ Low risk. Booking confirmed without advance."
	WaitingNotice    = "⏳ Please wait, predicting..."

	ClassDanger  = "danger"
	ClassSuccess = "success"
)

// RenderResult maps a stored result and the busy flag to what the page
// shows. Every label other than "Canceled" takes the success branch,
// the error marker included.
func RenderResult(result string, busy bool) models.ResultView {
	if busy {
		return models.ResultView{
			Waiting:        true,
			WaitingNotice:  WaitingNotice,
			ButtonLabel:    "Predicting...",
			ButtonDisabled: true,
		}
	}

	view := models.ResultView{ButtonLabel: "Predict"}
	switch {
	case result == "":
	case result == CanceledLabel:
		view.Show = true
		view.Message = CanceledMessage
		view.Class = ClassDanger
	default:
		view.Show = true
		view.Message = ConfirmedMessage
		view.Class = ClassSuccess
	}
	return view
}

// RenderState is RenderResult applied to a view snapshot
func RenderState(state models.ViewState) models.ViewResponse {
	return models.ViewResponse{
		ViewState: state,
		View:      RenderResult(state.Result, state.Busy),
	}
}
