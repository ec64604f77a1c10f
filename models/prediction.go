package models

import (
	"math"
	"strconv"
	"strings"
)

// Numeric is a form value coerced to a number. Text that does not parse is
// kept as an invalid number and encoded as JSON null.
type Numeric struct {
	Value float64
	Valid bool
}

// ParseNumeric parses base-10 text. Blank text is 0.
func ParseNumeric(text string) Numeric {
	text = strings.TrimSpace(text)
	if text == "" {
		return Numeric{Value: 0, Valid: true}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Numeric{}
	}
	return Numeric{Value: v, Valid: true}
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

// PredictionRequest is the JSON body sent to the prediction service
type PredictionRequest struct {
	NoOfAdults          Numeric `json:"no_of_adults"`
	NoOfChildren        Numeric `json:"no_of_children"`
	TotalNights         Numeric `json:"total_nights"`
	LeadTime            Numeric `json:"lead_time"`
	AvgPricePerRoom     Numeric `json:"avg_price_per_room"`
	RoomTypeReserved    string  `json:"room_type_reserved"`
	TypeOfMealPlan      string  `json:"type_of_meal_plan"`
	MarketSegmentType   string  `json:"market_segment_type"`
	RepeatedGuest       string  `json:"repeated_guest"`
	NoOfSpecialRequests Numeric `json:"no_of_special_requests"`
}

// PredictionResponse is the body returned by the prediction service
type PredictionResponse struct {
	Prediction *string `json:"prediction"`
	Error      string  `json:"error,omitempty"`
}

// ResultView is what the page shows below the form
type ResultView struct {
	Show           bool   `json:"show"`
	Waiting        bool   `json:"waiting"`
	WaitingNotice  string `json:"waiting_notice,omitempty"`
	Message        string `json:"message,omitempty"`
	Class          string `json:"class,omitempty"`
	ButtonLabel    string `json:"button_label"`
	ButtonDisabled bool   `json:"button_disabled"`
}

// ViewState is a snapshot of one booking view
type ViewState struct {
	Draft  BookingDraft `json:"draft"`
	Result string       `json:"result"`
	Busy   bool         `json:"busy"`
}

// ViewResponse is returned by the JSON API
type ViewResponse struct {
	ViewState
	View ResultView `json:"view"`
}
