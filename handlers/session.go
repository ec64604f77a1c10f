package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hotel-booking-predictor/models"
	"hotel-booking-predictor/services"
)

const (
	sessionCookie  = "booking_session"
	viewContextKey = "bookingView"
)

// Session attaches the caller's BookingView to the context. Read-only
// routes pass create=false and see no view until the first edit or submit.
func Session(store *services.SessionStore, create bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(sessionCookie); err == nil {
			if view, ok := store.Get(id); ok {
				c.Set(viewContextKey, view)
				c.Next()
				return
			}
		}

		if !create {
			c.Next()
			return
		}

		id, view, err := store.Create()
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(viewContextKey, view)
		c.Next()
	}
}

func currentView(c *gin.Context) *services.BookingView {
	return c.MustGet(viewContextKey).(*services.BookingView)
}

// currentState is the session's view state, or a fresh form when the
// caller has no session yet.
func currentState(c *gin.Context) models.ViewState {
	if v, ok := c.Get(viewContextKey); ok {
		return v.(*services.BookingView).State()
	}
	return models.ViewState{Draft: models.DefaultBookingDraft()}
}
