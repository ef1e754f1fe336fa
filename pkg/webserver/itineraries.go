package webserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wandergate/catalog-api/pkg/store"
)

// getItineraries returns all catalog itineraries
func (s *Server) getItineraries(c *gin.Context) {
	itineraries, err := s.storage.Itineraries(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch itineraries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch itineraries"})
		return
	}

	c.JSON(http.StatusOK, itineraries)
}

// getItineraryByID returns a single itinerary by numeric ID
func (s *Server) getItineraryByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid itinerary ID"})
		return
	}

	itinerary, err := s.storage.ItineraryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		s.logger.WithError(err).Error("Failed to fetch itinerary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch itinerary"})
		return
	}

	c.JSON(http.StatusOK, itinerary)
}
