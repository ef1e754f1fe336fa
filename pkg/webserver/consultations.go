package webserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wandergate/catalog-api/pkg/intake"
	"github.com/wandergate/catalog-api/pkg/models"
)

// createConsultationRequest validates a submission, stores it, and mirrors it
// to the spreadsheet off the response path. The response status depends only
// on validation and the primary store write; mirror failures are logged and
// swallowed.
func (s *Server) createConsultationRequest(c *gin.Context) {
	var sub models.ConsultationSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	normalized, err := s.validator.Validate(sub)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			s.logger.LogIntake(0, sub.Destination, false, verr.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		s.logger.WithError(err).Error("Failed to validate consultation request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create consultation request"})
		return
	}

	request, err := s.storage.CreateConsultationRequest(c.Request.Context(), *normalized)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create consultation request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create consultation request"})
		return
	}

	s.logger.LogIntake(request.ID, request.Destination, true, "")

	// Fire-and-forget: the 201 below does not wait for the mirror
	if s.mirror != nil {
		go s.mirrorConsultation(request)
	}

	c.JSON(http.StatusCreated, request)
}

// getConsultationRequests returns all stored consultation requests. This is
// an administrative read for the back-office follow-up process.
func (s *Server) getConsultationRequests(c *gin.Context) {
	requests, err := s.storage.ConsultationRequests(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch consultation requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// mirrorConsultation performs the best-effort spreadsheet append. It runs on
// its own context because the originating request has already been answered.
func (s *Server) mirrorConsultation(request *models.ConsultationRequest) {
	if err := s.mirror.Append(context.Background(), request); err != nil {
		s.logger.LogMirror(request.ID, s.config.Sheets.SpreadsheetID, false, err.Error())
		return
	}
	s.logger.LogMirror(request.ID, s.config.Sheets.SpreadsheetID, true, "")
}
