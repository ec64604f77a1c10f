package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"hotel-booking-predictor/models"
	"hotel-booking-predictor/services"
)

type formInput struct {
	Name    string
	Label   string
	Value   string
	Step    string
	Choices []models.Choice
}

type pageData struct {
	Inputs        []formInput
	View          models.ResultView
	WaitingNotice string
}

func newPageData(state models.ViewState) pageData {
	d := state.Draft
	return pageData{
		Inputs: []formInput{
			{Name: models.FieldAdults, Label: "Adults", Value: d.NoOfAdults},
			{Name: models.FieldChildren, Label: "Children", Value: d.NoOfChildren},
			{Name: models.FieldTotalNights, Label: "Total Nights", Value: d.TotalNights},
			{Name: models.FieldLeadTime, Label: "Lead Time (days before arrival)", Value: d.LeadTime},
			{Name: models.FieldAvgPrice, Label: "Average Price per Room", Value: d.AvgPricePerRoom, Step: "any"},
			{Name: models.FieldRoomType, Label: "Room Type", Value: d.RoomTypeReserved, Choices: models.RoomTypes},
			{Name: models.FieldMealPlan, Label: "Meal Plan", Value: d.TypeOfMealPlan, Choices: models.MealPlans},
			{Name: models.FieldMarketSegment, Label: "Market Segment", Value: d.MarketSegmentType, Choices: models.MarketSegments},
			{Name: models.FieldRepeatedGuest, Label: "Repeated Guest", Value: d.RepeatedGuest, Choices: models.RepeatedGuestChoices},
			{Name: models.FieldSpecialRequests, Label: "Special Requests", Value: d.NoOfSpecialRequests},
		},
		View:          services.RenderResult(state.Result, state.Busy),
		WaitingNotice: services.WaitingNotice,
	}
}

// ShowBookingPage renders the form with the session's draft and result
func ShowBookingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPageData(currentState(c)))
}

// SubmitBookingForm applies the posted fields, runs a prediction and
// redirects back to the page.
func SubmitBookingForm(c *gin.Context) {
	view := currentView(c)

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	for _, name := range models.FieldNames {
		if values, ok := c.Request.PostForm[name]; ok && len(values) > 0 {
			if err := view.Update(name, values[0]); err != nil {
				log.Printf("Error updating booking field: %v", err)
			}
		}
	}

	if err := view.Submit(context.WithoutCancel(c.Request.Context())); err != nil {
		if !errors.Is(err, services.ErrBusy) {
			log.Printf("Error submitting booking form: %v", err)
		}
	}

	c.Redirect(http.StatusSeeOther, "/")
}
