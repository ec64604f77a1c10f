package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"hotel-booking-predictor/config"
	"hotel-booking-predictor/frontend"
	"hotel-booking-predictor/services"
)

// NewRouter wires the page, the JSON API and the static assets
func NewRouter(cfg *config.Config, store *services.SessionStore) (*gin.Engine, error) {
	tmpl, err := frontend.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.Default()
	router.SetHTMLTemplate(tmpl)

	// CORS configuration; credentials only with explicit origins
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !cfg.CORSAllowsAll(),
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Booking page
	router.GET("/", Session(store, false), ShowBookingPage)
	router.POST("/predict", Session(store, true), SubmitBookingForm)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/view", Session(store, false), GetView)
		api.PATCH("/draft", Session(store, true), UpdateDraft)
		api.POST("/predict", Session(store, true), Predict)
	}

	// Serve static files (frontend)
	router.StaticFS("/css", http.FS(frontend.CSS()))
	router.StaticFS("/js", http.FS(frontend.JS()))

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router, nil
}
