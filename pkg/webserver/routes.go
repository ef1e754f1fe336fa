package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		// Catalog reads. The :slug parameter doubles as the numeric
		// destination ID on the nested itineraries route; gin requires a
		// single wildcard name per path segment.
		destinations := api.Group("/destinations")
		{
			destinations.GET("", s.getDestinations)
			destinations.GET("/:slug", s.getDestinationBySlug)
			destinations.GET("/:slug/itineraries", s.getItinerariesByDestination)
		}

		itineraries := api.Group("/itineraries")
		{
			itineraries.GET("", s.getItineraries)
			itineraries.GET("/:id", s.getItineraryByID)
		}

		api.GET("/testimonials", s.getTestimonials)

		// Intake
		consultations := api.Group("/consultation-requests")
		{
			consultations.POST("", s.createConsultationRequest)
			consultations.GET("", s.getConsultationRequests)
		}
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
