package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getTestimonials returns all catalog testimonials
func (s *Server) getTestimonials(c *gin.Context) {
	testimonials, err := s.storage.Testimonials(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch testimonials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}

	c.JSON(http.StatusOK, testimonials)
}
