package webserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wandergate/catalog-api/pkg/store"
)

// getDestinations returns all catalog destinations
func (s *Server) getDestinations(c *gin.Context) {
	destinations, err := s.storage.Destinations(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch destinations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch destinations"})
		return
	}

	c.JSON(http.StatusOK, destinations)
}

// getDestinationBySlug returns a single destination by its unique slug.
// An unknown slug is a 404, not a server fault.
func (s *Server) getDestinationBySlug(c *gin.Context) {
	slug := c.Param("slug")

	destination, err := s.storage.DestinationBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
			return
		}
		s.logger.WithError(err).Error("Failed to fetch destination")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch destination"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// getItinerariesByDestination returns the itineraries referencing a
// destination ID. IDs with no matches yield an empty array.
func (s *Server) getItinerariesByDestination(c *gin.Context) {
	destinationID, err := strconv.Atoi(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination ID"})
		return
	}

	itineraries, err := s.storage.ItinerariesByDestinationID(c.Request.Context(), destinationID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch itineraries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch itineraries"})
		return
	}

	c.JSON(http.StatusOK, itineraries)
}
