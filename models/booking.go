package models

// Field names of a booking draft, as posted by the form and sent to the
// prediction service.
const (
	FieldAdults          = "no_of_adults"
	FieldChildren        = "no_of_children"
	FieldTotalNights     = "total_nights"
	FieldLeadTime        = "lead_time"
	FieldAvgPrice        = "avg_price_per_room"
	FieldRoomType        = "room_type_reserved"
	FieldMealPlan        = "type_of_meal_plan"
	FieldMarketSegment   = "market_segment_type"
	FieldRepeatedGuest   = "repeated_guest"
	FieldSpecialRequests = "no_of_special_requests"
)

// FieldNames lists every draft field in form order.
var FieldNames = []string{
	FieldAdults,
	FieldChildren,
	FieldTotalNights,
	FieldLeadTime,
	FieldAvgPrice,
	FieldRoomType,
	FieldMealPlan,
	FieldMarketSegment,
	FieldRepeatedGuest,
	FieldSpecialRequests,
}

// BookingDraft holds the form values as the user typed them
type BookingDraft struct {
	NoOfAdults          string `json:"no_of_adults"`
	NoOfChildren        string `json:"no_of_children"`
	TotalNights         string `json:"total_nights"`
	LeadTime            string `json:"lead_time"`
	AvgPricePerRoom     string `json:"avg_price_per_room"`
	RoomTypeReserved    string `json:"room_type_reserved"`
	TypeOfMealPlan      string `json:"type_of_meal_plan"`
	MarketSegmentType   string `json:"market_segment_type"`
	RepeatedGuest       string `json:"repeated_guest"`
	NoOfSpecialRequests string `json:"no_of_special_requests"`
}

// DefaultBookingDraft returns the values a fresh form starts with
func DefaultBookingDraft() BookingDraft {
	return BookingDraft{
		NoOfAdults:          "1",
		NoOfChildren:        "0",
		TotalNights:         "1",
		LeadTime:            "5",
		AvgPricePerRoom:     "100",
		RoomTypeReserved:    RoomTypes[0].Value,
		TypeOfMealPlan:      MealPlans[0].Value,
		MarketSegmentType:   MarketSegments[0].Value,
		RepeatedGuest:       RepeatedGuestChoices[0].Value,
		NoOfSpecialRequests: "0",
	}
}

// Field returns a pointer to the named field, or nil for an unknown name.
func (d *BookingDraft) Field(name string) *string {
	switch name {
	case FieldAdults:
		return &d.NoOfAdults
	case FieldChildren:
		return &d.NoOfChildren
	case FieldTotalNights:
		return &d.TotalNights
	case FieldLeadTime:
		return &d.LeadTime
	case FieldAvgPrice:
		return &d.AvgPricePerRoom
	case FieldRoomType:
		return &d.RoomTypeReserved
	case FieldMealPlan:
		return &d.TypeOfMealPlan
	case FieldMarketSegment:
		return &d.MarketSegmentType
	case FieldRepeatedGuest:
		return &d.RepeatedGuest
	case FieldSpecialRequests:
		return &d.NoOfSpecialRequests
	default:
		return nil
	}
}

// ToRequest coerces the numeric fields and copies the categorical ones.
func (d BookingDraft) ToRequest() PredictionRequest {
	return PredictionRequest{
		NoOfAdults:          ParseNumeric(d.NoOfAdults),
		NoOfChildren:        ParseNumeric(d.NoOfChildren),
		TotalNights:         ParseNumeric(d.TotalNights),
		LeadTime:            ParseNumeric(d.LeadTime),
		AvgPricePerRoom:     ParseNumeric(d.AvgPricePerRoom),
		RoomTypeReserved:    d.RoomTypeReserved,
		TypeOfMealPlan:      d.TypeOfMealPlan,
		MarketSegmentType:   d.MarketSegmentType,
		RepeatedGuest:       d.RepeatedGuest,
		NoOfSpecialRequests: ParseNumeric(d.NoOfSpecialRequests),
	}
}

// DraftUpdateRequest represents a single field edit
type DraftUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}
