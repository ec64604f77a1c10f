package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"hotel-booking-predictor/apierrors"
	"hotel-booking-predictor/models"
	"hotel-booking-predictor/services"
)

func respondError(c *gin.Context, err error) {
	httpErr := apierrors.FromError(err)
	c.JSON(httpErr.Code, gin.H{"error": httpErr.Message})
}

// GetView returns the draft, result and rendered view
func GetView(c *gin.Context) {
	c.JSON(http.StatusOK, services.RenderState(currentState(c)))
}

// UpdateDraft replaces a single draft field
func UpdateDraft(c *gin.Context) {
	var req models.DraftUpdateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := currentView(c)
	if err := view.Update(req.Name, req.Value); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.Draft())
}

// Predict submits the current draft and returns the outcome
func Predict(c *gin.Context) {
	view := currentView(c)

	if err := view.Submit(context.WithoutCancel(c.Request.Context())); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.RenderState(view.State()))
}
